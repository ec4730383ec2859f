// Command counter-updater increments a counter kept in the SSM parameter store.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/yomorun/yomo-lambdas/pkg/config"
	"github.com/yomorun/yomo-lambdas/pkg/counter"
	"github.com/yomorun/yomo-lambdas/pkg/store"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

func main() {
	conf, err := config.ParseCounter()
	if err != nil {
		ylog.Error("counter updater config", err)
		os.Exit(1)
	}

	awsConf, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		ylog.Error("load aws config", err)
		os.Exit(1)
	}

	u := counter.New(
		store.NewSSMStoreFromConfig(awsConf),
		conf.ParameterName,
		counter.Options{Secure: conf.Secure, LogLevel: conf.LogLevel},
		ylog.Logger(),
	)
	lambda.Start(u.Handle)
}
