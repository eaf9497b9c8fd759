// Lambda entrypoint for GET /api/config.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/eventgram/photoshare/internal/bootstrap"
)

func main() {
	h, err := bootstrap.NewHandler(context.Background())
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return h.GetConfig(ctx, req), nil
	})
}
