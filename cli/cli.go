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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables backing the flags,
// eg. `--fixture` falls back to YOMO_LAMBDAS_FIXTURE.
const envPrefix = "YOMO_LAMBDAS"

// bindViper binds the flags of cmd, inherited ones included, to a new viper
// instance. A flag that is not set falls back to its environment variable,
// then to its default.
func bindViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	bindPFlags(v, cmd.Flags())
	return v
}

func bindPFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.BindPFlags(flags)
	v.AutomaticEnv()
}
