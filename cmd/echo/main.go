// Command echo answers private load balancer requests with the request itself.
package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/yomorun/yomo-lambdas/pkg/config"
	"github.com/yomorun/yomo-lambdas/pkg/echo"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

func main() {
	conf, err := config.ParseEcho()
	if err != nil {
		ylog.Error("echo config", err)
		os.Exit(1)
	}

	lambda.Start(echo.New(conf.Message, ylog.Logger()).Handle)
}
