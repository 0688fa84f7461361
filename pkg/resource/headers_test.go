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
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeadersBasicAuth(t *testing.T) {
	src := Source{BasicAuthUsername: str("u"), BasicAuthPassword: str("p")}

	assert.True(t, HasBasicAuth(src))

	headers := NewHeaders(src)
	assert.Len(t, headers, 1)
	assert.Equal(t, []string{"Basic dTpw"}, headers.Values("Authorization"))
}

func TestNewHeadersEncodesPair(t *testing.T) {
	tests := []struct {
		username, password string
	}{
		{"admin", "Harbor12345"},
		{"robot$ci", "p@ss word"},
		{"ünïcode", "pässwörd"},
		// a colon in the username is passed through unescaped
		{"user:name", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			headers := NewHeaders(Source{BasicAuthUsername: str(tt.username), BasicAuthPassword: str(tt.password)})

			want := "Basic " + base64.StdEncoding.EncodeToString([]byte(tt.username+":"+tt.password))
			assert.Equal(t, want, headers.Get("Authorization"))
		})
	}
}

func TestNewHeadersWithoutBasicAuth(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"nothing", Source{}},
		{"username only", Source{BasicAuthUsername: str("u")}},
		{"password only", Source{BasicAuthPassword: str("p")}},
		{"empty username", Source{BasicAuthUsername: str(""), BasicAuthPassword: str("p")}},
		{"empty password", Source{BasicAuthUsername: str("u"), BasicAuthPassword: str("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, HasBasicAuth(tt.src))

			headers := NewHeaders(tt.src)
			assert.NotNil(t, headers)
			assert.Empty(t, headers)
			assert.Empty(t, headers.Values("Authorization"))
		})
	}
}
