// Package bootstrap wires the production backends for the Lambda
// entrypoints: configuration from the environment, DynamoDB for metadata, S3
// for image bytes, SNS for operator notifications.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/eventgram/photoshare/internal/config"
	"github.com/eventgram/photoshare/internal/handler"
	"github.com/eventgram/photoshare/internal/logging"
	"github.com/eventgram/photoshare/internal/notify"
	"github.com/eventgram/photoshare/internal/objectstore"
	"github.com/eventgram/photoshare/internal/storage"
)

// NewHandler builds a fully wired handler. A configuration or AWS setup
// failure here is fatal for the invocation environment; callers exit.
func NewHandler(ctx context.Context) (*handler.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.NewJSON(cfg.Debug)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	store := storage.NewDynamoDBStore(dynamodb.NewFromConfig(awsCfg), cfg.PhotosTable)
	objects := objectstore.NewS3StoreFromClient(s3.NewFromConfig(awsCfg), cfg.PhotosBucket)
	notifier := notify.NewSNSNotifier(sns.NewFromConfig(awsCfg), cfg.DeleteRequestTopicARN)

	return handler.New(store, objects, notifier, cfg, log), nil
}
