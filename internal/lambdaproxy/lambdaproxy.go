// Package lambdaproxy serves an http.Handler behind API Gateway proxy
// events.
package lambdaproxy

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// HandlerFunc is the signature lambda.Start expects for proxy events.
type HandlerFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Handler adapts h to API Gateway proxy events. Bodies and headers are
// translated by httpadapter, including base64 bodies in both directions.
func Handler(h http.Handler) HandlerFunc {
	return httpadapter.New(h).ProxyWithContext
}
