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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-resource/chart-resource/internal/version"
)

func TestVersion(t *testing.T) {
	tests := []cmdTestCase{{
		name:   "default",
		cmd:    "version",
		golden: "output/version.txt",
	}, {
		name:   "json",
		cmd:    "version -o json",
		golden: "output/version.json",
	}, {
		name:   "yaml",
		cmd:    "version --output yaml",
		golden: "output/version.yaml",
	}, {
		name:   "short",
		cmd:    "version --short",
		golden: "output/version-short.txt",
	}, {
		name:   "template",
		cmd:    "version --template='Version: {{.Version}}'",
		golden: "output/version-template.txt",
	}, {
		name:   "template with user agent",
		cmd:    "version --template='{{.UserAgent}}'",
		golden: "output/version-template-agent.txt",
	}, {
		name:      "bad template",
		cmd:       "version --template='{{.Nope'",
		wantError: true,
	}, {
		name:      "invalid output",
		cmd:       "version --output xml",
		wantError: true,
	}, {
		name:      "extra args",
		cmd:       "version foo",
		wantError: true,
	}}
	runTestCmd(t, tests)
}

func TestVersionMatchesTransportUserAgent(t *testing.T) {
	_, out, err := executeCommandC("version --template='{{.UserAgent}}'")
	require.NoError(t, err)
	assert.Equal(t, version.GetUserAgent(), out)
}

func TestShortVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", shortVersion(version.BuildInfo{Version: "v1.2.3"}))
	assert.Equal(t, "v1.2.3+gabcdef0", shortVersion(version.BuildInfo{Version: "v1.2.3", GitCommit: "abcdef0123456789"}))
}
