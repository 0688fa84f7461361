/*
Copyright The Helm Authors.

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

package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/chart-resource/chart-resource/pkg/cli/output"
	"github.com/chart-resource/chart-resource/pkg/cmd/require"
)

const envHelp = `
Print the settings in effect, under the environment variable that sets them.
Flags given on the command line are taken into account.

With a NAME only the value of that variable is printed.
`

func newEnvCmd(out io.Writer) *cobra.Command {
	var outfmt output.Format

	cmd := &cobra.Command{
		Use:   "env [NAME]",
		Short: "print the chart-resource settings in effect",
		Long:  envHelp,
		Args:  require.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return sortedEnvVarKeys(settings.EnvVars()), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			envVars := settings.EnvVars()
			if len(args) == 0 {
				return outfmt.Write(out, envWriter(envVars))
			}

			value, ok := envVars[args[0]]
			if !ok {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			fmt.Fprintln(out, value)
			return nil
		},
	}

	bindOutputFlag(cmd, &outfmt)

	return cmd
}

func sortedEnvVarKeys(envVars map[string]string) []string {
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type envWriter map[string]string

func (e envWriter) WriteTable(out io.Writer) error {
	table := uitable.New()
	table.AddRow("NAME", "VALUE")
	for _, k := range sortedEnvVarKeys(e) {
		table.AddRow(k, e[k])
	}
	return output.EncodeTable(out, table)
}

func (e envWriter) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, map[string]string(e))
}

func (e envWriter) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, map[string]string(e))
}
