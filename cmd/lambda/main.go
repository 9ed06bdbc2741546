package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/container"
	"github.com/saulo-duarte/adaptive-tutor/internal/router"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	settings := config.Load()
	c, err := container.New(context.Background(), settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to initialize")
	}

	adapter = httpadapter.New(router.New(router.RouterConfig{
		ChatHandler:    c.ChatContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		CorsOrigin:     settings.CorsOrigin,
		RequestTimeout: settings.RequestTimeout,
	}))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
