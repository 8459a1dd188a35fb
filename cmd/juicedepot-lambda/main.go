// Command juicedepot-lambda serves the depot API from AWS Lambda behind an
// API Gateway proxy integration. Settings come from JUICEDEPOT_* variables.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/erazemk/juicedepot/internal/bootstrap"
	"github.com/erazemk/juicedepot/internal/config"
	"github.com/erazemk/juicedepot/internal/lambdaproxy"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	handler, err := newHandler(context.Background())
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	lambda.Start(handler)
}

// newHandler builds the proxy handler. The store stays open for the life
// of the Lambda instance.
func newHandler(ctx context.Context) (lambdaproxy.HandlerFunc, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st, svc, err := bootstrap.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	h, err := bootstrap.Handler(ctx, cfg, st, svc)
	if err != nil {
		st.Close()
		return nil, err
	}
	return lambdaproxy.Handler(h), nil
}
