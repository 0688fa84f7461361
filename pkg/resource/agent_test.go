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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-resource/chart-resource/internal/test"
)

func str(s string) *string { return &s }

func TestNewAgentOptionsFullConfig(t *testing.T) {
	src := Source{
		TLSCACert:     str("ca-pem"),
		TLSClientCert: str("cert-pem"),
		TLSClientKey:  str("key-pem"),
	}

	assert.True(t, HasFullTLSConfig(src))
	assert.Equal(t, AgentOptions{CA: "ca-pem", Cert: "cert-pem", Key: "key-pem"}, NewAgentOptions(src))
}

func TestNewAgentOptionsPartialConfig(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"nothing", Source{}},
		{"missing ca", Source{TLSClientCert: str("cert"), TLSClientKey: str("key")}},
		{"missing cert", Source{TLSCACert: str("ca"), TLSClientKey: str("key")}},
		{"missing key", Source{TLSCACert: str("ca"), TLSClientCert: str("cert")}},
		{"only ca", Source{TLSCACert: str("ca")}},
		{"only cert", Source{TLSClientCert: str("cert")}},
		{"only key", Source{TLSClientKey: str("key")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, HasFullTLSConfig(tt.src))

			opts := NewAgentOptions(tt.src)
			assert.Equal(t, "", opts.CA)
			assert.Equal(t, "", opts.Cert)
			assert.Equal(t, "", opts.Key)
			assert.False(t, opts.KeepAlive)
		})
	}
}

func TestNewAgentOptionsEmptyStringIsPresent(t *testing.T) {
	src := Source{
		TLSCACert:     str(""),
		TLSClientCert: str("cert"),
		TLSClientKey:  str("key"),
	}

	assert.True(t, HasFullTLSConfig(src))
	assert.Equal(t, AgentOptions{CA: "", Cert: "cert", Key: "key"}, NewAgentOptions(src))
}

func TestNewAgentOptionsFromJSON(t *testing.T) {
	in := `{"source":{"server_url":"https://x","chart_name":"c","tls_ca_cert":"ca","tls_client_cert":"cert"}}`

	req, err := ReadRequest[CheckRequest](context.Background(), strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, AgentOptions{}, NewAgentOptions(req.Source))
}

func TestAgentOptionsTransport(t *testing.T) {
	certs := test.GenerateCertificates(t)

	opts := NewAgentOptions(Source{
		TLSCACert:     str(certs.CAPEM),
		TLSClientCert: str(certs.ClientPEM),
		TLSClientKey:  str(certs.ClientKey),
	})

	tr, err := opts.Transport()
	require.NoError(t, err)

	assert.True(t, tr.DisableKeepAlives)
	require.NotNil(t, tr.TLSClientConfig)
	assert.Len(t, tr.TLSClientConfig.Certificates, 1)
	assert.NotNil(t, tr.TLSClientConfig.RootCAs)
	assert.False(t, tr.TLSClientConfig.InsecureSkipVerify)

	opts.KeepAlive = true
	tr, err = opts.Transport()
	require.NoError(t, err)
	assert.False(t, tr.DisableKeepAlives)
}

func TestAgentOptionsTransportDefaults(t *testing.T) {
	tr, err := NewAgentOptions(Source{}).Transport()
	require.NoError(t, err)

	require.NotNil(t, tr.TLSClientConfig)
	assert.Empty(t, tr.TLSClientConfig.Certificates)
	assert.Nil(t, tr.TLSClientConfig.RootCAs, "no CA keeps the system trust store")
	assert.True(t, tr.DisableKeepAlives)
}

func TestAgentOptionsTransportBadPEM(t *testing.T) {
	opts := NewAgentOptions(Source{
		TLSCACert:     str("not a ca"),
		TLSClientCert: str("not a cert"),
		TLSClientKey:  str("not a key"),
	})

	_, err := opts.Transport()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't create TLS config for client")
}
