package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	feedsync "github.com/Boza-Analytics/Central-Database-of-used-cars---export-to-S3"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := feedsync.LoadConfig()

	store, err := feedsync.NewS3Uploader()
	if err != nil {
		logger.Fatal("s3 client init failed", zap.Error(err))
	}

	syncer := feedsync.New(cfg, nil, store, logger)

	// The scheduler event carries nothing the export needs.
	lambda.Start(func(ctx context.Context, event map[string]interface{}) (feedsync.Result, error) {
		return syncer.Run(ctx)
	})
}
