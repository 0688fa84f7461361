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
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chart-resource/chart-resource/pkg/cmd/require"
	"github.com/chart-resource/chart-resource/pkg/transport"
)

const pingDesc = `
Read a check, in or out request from stdin and send a GET request to the
chart repository with the TLS and basic auth settings of the request.

The URL defaults to the server_url of the source. The HTTP status is printed
whatever it is; only a failure to reach the server is an error.

	$ chart-resource ping < request.json
	$ chart-resource ping https://charts.example.com/api/charts < request.json
`

func newPingCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "ping [URL]",
		Short:             "reach the chart repository with the settings of a request",
		Long:              pingDesc,
		Args:              require.MaximumNArgs(1),
		ValidArgsFunction: noMoreArgsCompFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceRequest(cmd)
			if err != nil {
				return err
			}

			href := src.ServerURL
			if len(args) > 0 {
				href = args[0]
			}
			if href == "" {
				return errors.New("no server_url in the request source")
			}

			client, err := transport.ForSource(src, transport.WithTimeout(settings.Timeout))
			if err != nil {
				return err
			}

			req, err := http.NewRequestWithContext(commandContext(cmd), http.MethodGet, href, nil)
			if err != nil {
				return errors.Wrapf(err, "unable to build request for %s", href)
			}

			slog.Debug("pinging chart repository", slog.String("url", href), slog.Duration("timeout", settings.Timeout))
			resp, err := client.HTTPClient().Do(req)
			if err != nil {
				return errors.Wrapf(err, "unable to reach %s", href)
			}
			defer resp.Body.Close()

			fmt.Fprintf(out, "%s %s\n", href, resp.Status)
			return nil
		},
	}

	return cmd
}
