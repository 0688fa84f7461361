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
	"io"
	"log/slog"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/chart-resource/chart-resource/pkg/cli/output"
	"github.com/chart-resource/chart-resource/pkg/cmd/require"
	"github.com/chart-resource/chart-resource/pkg/resource"
)

const inspectDesc = `
Read a check, in or out request from stdin and show how the resource will
connect to the chart repository.

Secrets are never printed. Partially supplied TLS or basic auth settings are
reported as warnings because the resource silently ignores them.

	$ echo '{"source":{"server_url":"https://charts.example.com","chart_name":"app"}}' | chart-resource inspect
`

const (
	apiChartMuseum = "chartmuseum"
	apiHarbor      = "harbor"
)

func newInspectCmd(out io.Writer) *cobra.Command {
	var outfmt output.Format

	cmd := &cobra.Command{
		Use:               "inspect",
		Short:             "show the effective connection settings of a request",
		Long:              inspectDesc,
		Args:              require.NoArgs,
		ValidArgsFunction: noMoreArgsCompFunc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := readSourceRequest(cmd)
			if err != nil {
				return err
			}
			return outfmt.Write(out, newInspectReport(src))
		},
	}

	bindOutputFlag(cmd, &outfmt)

	return cmd
}

type inspectReport struct {
	ServerURL         string          `json:"server_url"`
	ChartName         string          `json:"chart_name"`
	API               string          `json:"api"`
	BasicAuth         bool            `json:"basic_auth"`
	MutualTLS         bool            `json:"mutual_tls"`
	VersionRange      string          `json:"version_range,omitempty"`
	VersionRangeValid bool            `json:"version_range_valid"`
	Source            resource.Source `json:"source"`
}

// newInspectReport summarizes src and logs a warning for every setting the
// resource will ignore.
func newInspectReport(src resource.Source) inspectReport {
	r := inspectReport{
		ServerURL:         src.ServerURL,
		ChartName:         src.ChartName,
		API:               apiChartMuseum,
		BasicAuth:         resource.HasBasicAuth(src),
		MutualTLS:         resource.HasFullTLSConfig(src),
		VersionRangeValid: true,
		Source:            src.Redacted(),
	}
	if src.UsesHarborAPI() {
		r.API = apiHarbor
	}
	if src.VersionRange != nil {
		r.VersionRange = *src.VersionRange
	}
	if _, err := src.VersionConstraints(); err != nil {
		r.VersionRangeValid = false
		slog.Warn("version range cannot be parsed", slog.Any("error", err))
	}

	if missing := missingTLSFields(src); len(missing) > 0 {
		slog.Warn("incomplete TLS settings are ignored, the system trust store is used without a client certificate",
			slog.Any("missing", missing))
	}
	if (src.BasicAuthUsername != nil || src.BasicAuthPassword != nil) && !r.BasicAuth {
		slog.Warn("basic auth needs a non-empty basic_auth_username and basic_auth_password, requests are sent without credentials")
	}

	return r
}

// missingTLSFields names the TLS fields left out when at least one was given.
func missingTLSFields(src resource.Source) []string {
	fields := []struct {
		name string
		set  bool
	}{
		{"tls_ca_cert", src.TLSCACert != nil},
		{"tls_client_cert", src.TLSClientCert != nil},
		{"tls_client_key", src.TLSClientKey != nil},
	}

	var missing []string
	given := false
	for _, f := range fields {
		if f.set {
			given = true
			continue
		}
		missing = append(missing, f.name)
	}
	if !given {
		return nil
	}
	return missing
}

func (r inspectReport) WriteTable(out io.Writer) error {
	versionRange := r.VersionRange
	if versionRange == "" {
		versionRange = "any"
	}

	table := uitable.New()
	table.AddRow("SETTING", "VALUE")
	table.AddRow("server url", r.ServerURL)
	table.AddRow("chart", r.ChartName)
	table.AddRow("api", r.API)
	table.AddRow("basic auth", enabled(r.BasicAuth))
	table.AddRow("mutual tls", enabled(r.MutualTLS))
	table.AddRow("version range", versionRange)
	table.AddRow("version range valid", strconv.FormatBool(r.VersionRangeValid))
	return output.EncodeTable(out, table)
}

func (r inspectReport) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, r)
}

func (r inspectReport) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, r)
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
