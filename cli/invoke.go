/*
Copyright © 2021 CELLA, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"
	"github.com/yomorun/yomo-lambdas/pkg/config"
	"github.com/yomorun/yomo-lambdas/pkg/counter"
	"github.com/yomorun/yomo-lambdas/pkg/echo"
	"github.com/yomorun/yomo-lambdas/pkg/fetcher"
	"github.com/yomorun/yomo-lambdas/pkg/store"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

// stores are the backends of a local invocation.
type stores struct {
	blobs  store.BlobStore
	params store.ParameterStore
	// save persists the parameter writes of the invocation.
	save func() error
}

// openStores backs the stores by the yaml fixture at path, or by the
// AWS services if path is empty.
func openStores(ctx context.Context, path string) (*stores, error) {
	if path != "" {
		s, err := store.LoadFixture(path)
		if err != nil {
			return nil, err
		}
		return &stores{
			blobs:  s,
			params: s,
			save:   func() error { return s.SaveFixture(path) },
		}, nil
	}

	awsConf, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &stores{
		blobs:  store.NewS3StoreFromConfig(awsConf),
		params: store.NewSSMStoreFromConfig(awsConf),
		save:   func() error { return nil },
	}, nil
}

// invocationContext tags ctx like the lambda runtime does.
func invocationContext(ctx context.Context, function string) context.Context {
	return lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       gonanoid.Must(),
		InvokedFunctionArn: "local:" + function,
	})
}

func handlerLogger() *slog.Logger {
	if verbose {
		return ylog.NewFromConfig(ylog.Config{Level: "debug", Verbose: true})
	}
	return ylog.Logger()
}

func printResponse(cmd *cobra.Command, resp any) error {
	buf, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(buf))
	return err
}

func newCmdInvoke() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Invoke a function with a synthetic event",
	}

	cmd.PersistentFlags().StringP("fixture", "f", "", "yaml fixture backing the stores, the AWS services are used if empty")

	cmd.AddCommand(
		newCmdInvokeFetch(),
		newCmdInvokeIncrement(),
		newCmdInvokeEcho(),
	)

	return cmd
}

func newCmdInvokeFetch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Invoke the content fetcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := bindViper(cmd)

			ctx := invocationContext(cmd.Context(), "content-fetcher")
			s, err := openStores(ctx, v.GetString("fixture"))
			if err != nil {
				return err
			}

			bucket := v.GetString("bucket")
			if bucket == "" {
				InfoStatusEvent(cmd.ErrOrStderr(), "bucket is not set, every request is not found")
			}

			path := v.GetString("path")
			done := Spinner(cmd.ErrOrStderr(), "GET %s", path)
			resp, err := fetcher.New(s.blobs, bucket, handlerLogger()).Handle(ctx, events.ALBTargetGroupRequest{
				HTTPMethod: http.MethodGet,
				Path:       path,
			})
			done(err == nil && resp.StatusCode == http.StatusOK)
			if err != nil {
				return err
			}

			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringP("path", "p", "/", "request path")
	cmd.Flags().StringP("bucket", "b", "", "bucket serving the content")

	return cmd
}

func newCmdInvokeIncrement() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Invoke the counter updater",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := bindViper(cmd)

			name := v.GetString("name")
			if name == "" {
				return errors.New("the parameter name must be set by `--name`")
			}
			level, err := config.ParseLogLevel(v.GetString("log-level"))
			if err != nil {
				return fmt.Errorf("unknown log level: %w", err)
			}
			opts := counter.Options{
				Secure:   v.GetBool("secure"),
				LogLevel: level,
			}

			ctx := invocationContext(cmd.Context(), "counter-updater")
			s, err := openStores(ctx, v.GetString("fixture"))
			if err != nil {
				return err
			}

			done := Spinner(cmd.ErrOrStderr(), "increment %s", name)
			resp, err := counter.New(s.params, name, opts, handlerLogger()).Handle(ctx, events.APIGatewayProxyRequest{})
			done(err == nil && resp.StatusCode == http.StatusOK)
			if err != nil {
				return err
			}

			if resp.StatusCode == http.StatusOK {
				if err := s.save(); err != nil {
					return err
				}
			}

			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringP("name", "n", "", "parameter holding the counter")
	cmd.Flags().Bool("secure", true, "read decrypted and write a SecureString")
	cmd.Flags().String("log-level", string(config.LogWarn), "success logging, off|warn")

	return cmd
}

func newCmdInvokeEcho() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo",
		Short: "Invoke the echo responder",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := bindViper(cmd)

			ctx := invocationContext(cmd.Context(), "echo")
			resp, err := echo.New(v.GetString("message"), handlerLogger()).Handle(ctx, events.ALBTargetGroupRequest{
				HTTPMethod: v.GetString("method"),
				Path:       v.GetString("path"),
				Body:       v.GetString("body"),
			})
			if err != nil {
				return err
			}

			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringP("path", "p", "/", "request path")
	cmd.Flags().StringP("method", "X", http.MethodGet, "request method")
	cmd.Flags().StringP("body", "d", "", "request body")
	cmd.Flags().String("message", "Hello from Lambda!", "greeting of the response")

	return cmd
}
