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
	"text/template"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/chart-resource/chart-resource/internal/version"
	"github.com/chart-resource/chart-resource/pkg/cli/output"
	"github.com/chart-resource/chart-resource/pkg/cmd/require"
)

const versionDesc = `
Show the build of chart-resource and the User-Agent it sends to chart
repositories. Repository operators can match that User-Agent in their access
logs to find the requests of a pipeline.

--short prints the version number alone. --template renders a Go template
against the fields .Version, .GitCommit, .GitTreeState, .GoVersion and
.UserAgent, e.g. --template='{{.UserAgent}}'.
`

type versionOptions struct {
	short    bool
	template string
	outfmt   output.Format
}

// versionInfo is the build info plus what the client derives from it.
type versionInfo struct {
	version.BuildInfo
	UserAgent string `json:"user_agent"`
}

func newVersionCmd(out io.Writer) *cobra.Command {
	o := &versionOptions{}

	cmd := &cobra.Command{
		Use:               "version",
		Short:             "print the chart-resource build and User-Agent",
		Long:              versionDesc,
		Args:              require.NoArgs,
		ValidArgsFunction: noMoreArgsCompFunc,
		RunE: func(_ *cobra.Command, _ []string) error {
			return o.run(out)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.short, "short", false, "print the version number only")
	f.StringVar(&o.template, "template", "", "Go template for the version output")
	bindOutputFlag(cmd, &o.outfmt)

	return cmd
}

func (o *versionOptions) run(out io.Writer) error {
	info := versionInfo{
		BuildInfo: version.Get(),
		UserAgent: version.GetUserAgent(),
	}

	switch {
	case o.template != "":
		tt, err := template.New("version").Parse(o.template)
		if err != nil {
			return err
		}
		return tt.Execute(out, info)
	case o.short:
		_, err := fmt.Fprintln(out, shortVersion(info.BuildInfo))
		return err
	}
	return o.outfmt.Write(out, info)
}

// shortVersion is the version with the abbreviated commit when known.
func shortVersion(v version.BuildInfo) string {
	if len(v.GitCommit) >= 7 {
		return fmt.Sprintf("%s+g%s", v.Version, v.GitCommit[:7])
	}
	return v.Version
}

func (v versionInfo) WriteTable(out io.Writer) error {
	table := uitable.New()
	table.AddRow("VERSION", v.Version)
	if v.GitCommit != "" {
		table.AddRow("GIT COMMIT", v.GitCommit)
	}
	if v.GitTreeState != "" {
		table.AddRow("GIT TREE STATE", v.GitTreeState)
	}
	if v.GoVersion != "" {
		table.AddRow("GO VERSION", v.GoVersion)
	}
	table.AddRow("USER AGENT", v.UserAgent)
	return output.EncodeTable(out, table)
}

func (v versionInfo) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, v)
}

func (v versionInfo) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, v)
}
