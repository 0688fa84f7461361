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

package resource

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsesHarborAPI(t *testing.T) {
	yes, no := true, false

	assert.False(t, Source{}.UsesHarborAPI())
	assert.False(t, Source{HarborAPI: &no}.UsesHarborAPI())
	assert.True(t, Source{HarborAPI: &yes}.UsesHarborAPI())
}

func TestVersionConstraints(t *testing.T) {
	c, err := Source{}.VersionConstraints()
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = Source{VersionRange: str("")}.VersionConstraints()
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = Source{VersionRange: str(">=1.2.0 <2.0.0")}.VersionConstraints()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, c.Check(semver.MustParse("1.5.0")))
	assert.False(t, c.Check(semver.MustParse("2.0.0")))
	assert.False(t, c.Check(semver.MustParse("1.1.9")))

	_, err = Source{VersionRange: str("not-a-range")}.VersionConstraints()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid version_range "not-a-range"`)
}

func TestRedacted(t *testing.T) {
	src := Source{
		ServerURL:         "https://charts.example.com",
		ChartName:         "app",
		BasicAuthUsername: str("admin"),
		BasicAuthPassword: str("hunter2"),
		TLSCACert:         str("ca"),
		TLSClientCert:     str("cert"),
		TLSClientKey:      str("key"),
	}

	red := src.Redacted()
	assert.Equal(t, "admin", *red.BasicAuthUsername)
	assert.Equal(t, RedactedValue, *red.BasicAuthPassword)
	assert.Equal(t, RedactedValue, *red.TLSClientKey)
	assert.Equal(t, "ca", *red.TLSCACert)
	assert.Equal(t, "cert", *red.TLSClientCert)

	// src is untouched
	assert.Equal(t, "hunter2", *src.BasicAuthPassword)
	assert.Equal(t, "key", *src.TLSClientKey)

	assert.Equal(t, HasBasicAuth(src), HasBasicAuth(red))
	assert.Equal(t, HasFullTLSConfig(src), HasFullTLSConfig(red))
}

func TestRedactedKeepsAbsence(t *testing.T) {
	red := Source{BasicAuthPassword: str("")}.Redacted()

	assert.Nil(t, red.TLSClientKey)
	assert.Equal(t, "", *red.BasicAuthPassword)
}
