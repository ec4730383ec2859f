// Command content-fetcher serves the objects of an S3 bucket behind an
// application load balancer.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/yomorun/yomo-lambdas/pkg/config"
	"github.com/yomorun/yomo-lambdas/pkg/fetcher"
	"github.com/yomorun/yomo-lambdas/pkg/store"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

func main() {
	// A missing bucket is reported per request with the not found page.
	conf, err := config.ParseContent()
	if err != nil {
		ylog.Error("content fetcher config", err)
	}

	awsConf, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		ylog.Error("load aws config", err)
		os.Exit(1)
	}

	f := fetcher.New(store.NewS3StoreFromConfig(awsConf), conf.Bucket, ylog.Logger())
	lambda.Start(f.Handle)
}
