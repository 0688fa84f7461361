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

package cmd // import "github.com/chart-resource/chart-resource/pkg/cmd"

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chart-resource/chart-resource/internal/logging"
	"github.com/chart-resource/chart-resource/pkg/cli"
	"github.com/chart-resource/chart-resource/pkg/resource"
)

var globalUsage = `Diagnostics for the chart repository resource.

Every command reads a check, in or out request on stdin, the same JSON
document the resource receives from the pipeline, and reports what the
resource makes of it.

Common actions:

- chart-resource inspect:  show the effective connection settings
- chart-resource ping:     reach the chart repository with those settings
- chart-resource env:      print the settings in effect

Environment variables:

| Name                     | Description                                                   |
|--------------------------|---------------------------------------------------------------|
| $CHART_RESOURCE_DEBUG    | indicate whether or not debug logging is enabled               |
| $CHART_RESOURCE_TIMEOUT  | set the timeout of a single request to the chart repository   |
`

var settings = cli.New()

// NewRootCmd builds the chart-resource command tree. Logs go to the error
// stream of the command so stdout stays free for results.
func NewRootCmd(out io.Writer, args []string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "chart-resource",
		Short:        "Diagnostics for the chart repository resource.",
		Long:         globalUsage,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logging.NewLogger(cmd.ErrOrStderr(), func() bool { return settings.Debug }))
		},
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	// We can safely ignore any errors that flags.Parse encounters since
	// those errors will be caught later during the call to cmd.Execution.
	// This call is required to gather configuration information prior to
	// execution.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Parse(args)

	cmd.AddCommand(
		newInspectCmd(out),
		newPingCmd(out),
		newEnvCmd(out),
		newVersionCmd(out),
	)

	return cmd, nil
}

// readSourceRequest reads the request on the command's input and returns
// its source. The rest of the request is ignored.
func readSourceRequest(cmd *cobra.Command) (resource.Source, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		slog.Info("waiting for a JSON request on stdin, end it with Ctrl-D")
	}

	req, err := resource.ReadRequest[sourceRequest](commandContext(cmd), in)
	if err != nil {
		return resource.Source{}, err
	}
	return req.Source, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// sourceRequest matches the common part of check, in and out requests.
type sourceRequest struct {
	Source resource.Source `json:"source"`
}
