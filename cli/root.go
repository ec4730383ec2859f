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
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is the version of the CLI, set at link time.
var Version = "dev"

var verbose bool

// NewRootCmd returns the yomo-lambdas command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "yomo-lambdas",
		Short:         "Invoke the lambda functions locally",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("yomo-lambdas version: %s\n", rootCmd.Version))

	// overwrite the shorthand of version flag to V.
	rootCmd.Flags().BoolP("version", "V", false, "version for yomo-lambdas")

	// set verbose flag
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&logAsJSON, "json", false, "report status events as json")

	rootCmd.AddCommand(newCmdInvoke())

	return rootCmd
}

// Execute runs the root command, it is called by main.main().
func Execute() {
	cobra.OnInitialize(initDotEnv)

	if err := NewRootCmd().Execute(); err != nil {
		FailureStatusEvent(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// initDotEnv loads environment variables from .env file.
func initDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}
}
