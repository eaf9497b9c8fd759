// Package apigw builds API Gateway proxy responses in the project's JSON
// envelope, with open CORS on every endpoint.
package apigw

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/model"
)

func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET,POST,PATCH,DELETE,OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

func respond(status int, env model.Envelope) events.APIGatewayProxyResponse {
	body, err := json.Marshal(env)
	if err != nil {
		// Envelope marshalling only fails on unserializable Data; fall back
		// to a fixed internal-error body rather than an empty response.
		body = []byte(`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"internal error"}}`)
		status = http.StatusInternalServerError
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}

// OK wraps data in a success envelope.
func OK(status int, data interface{}) events.APIGatewayProxyResponse {
	return respond(status, model.Envelope{Success: true, Data: data})
}

// Error wraps a stable error code in a failure envelope.
func Error(status int, code, message string, details interface{}) events.APIGatewayProxyResponse {
	return respond(status, model.Envelope{
		Success: false,
		Error:   &model.ErrorBody{Code: code, Message: message, Details: details},
	})
}

// Preflight answers a CORS OPTIONS request.
func Preflight() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    corsHeaders(),
	}
}

// MethodNotAllowed rejects an unexpected HTTP method on a route.
func MethodNotAllowed(method string) events.APIGatewayProxyResponse {
	return Error(http.StatusMethodNotAllowed, model.ErrMethodNotAllowed,
		"method "+method+" not allowed", nil)
}
