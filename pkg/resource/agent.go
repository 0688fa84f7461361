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
	"crypto/tls"
	"net/http"

	"github.com/pkg/errors"

	"github.com/chart-resource/chart-resource/internal/tlsutil"
)

// AgentOptions is the TLS configuration of the HTTPS agent used to reach the
// chart repository. Certificate material is kept as opaque PEM text.
type AgentOptions struct {
	CA        string
	Cert      string
	Key       string
	KeepAlive bool
}

// HasFullTLSConfig reports whether the CA certificate, the client certificate
// and the client key are all present. An empty string counts as present.
func HasFullTLSConfig(src Source) bool {
	return src.TLSCACert != nil && src.TLSClientCert != nil && src.TLSClientKey != nil
}

// NewAgentOptions builds the agent configuration for src.
//
// The TLS material is copied only when HasFullTLSConfig holds. Otherwise all
// three fields are left empty, which means the system trust store and no
// client certificate. It never fails and does not look at the PEM content.
func NewAgentOptions(src Source) AgentOptions {
	opts := AgentOptions{}

	if HasFullTLSConfig(src) {
		opts.CA = *src.TLSCACert
		opts.Cert = *src.TLSClientCert
		opts.Key = *src.TLSClientKey
	}

	return opts
}

// TLSConfig parses the PEM material into a client TLS configuration.
func (a AgentOptions) TLSConfig() (*tls.Config, error) {
	cfg, err := tlsutil.NewTLSConfig(
		tlsutil.WithCertKeyPairPEM(a.Cert, a.Key),
		tlsutil.WithCAPEM(a.CA),
	)
	if err != nil {
		return nil, errors.Wrap(err, "can't create TLS config for client")
	}
	return cfg, nil
}

// Transport returns a fresh HTTP transport for the agent. Connections are not
// reused unless KeepAlive is set.
func (a AgentOptions) Transport() (*http.Transport, error) {
	tlsConf, err := a.TLSConfig()
	if err != nil {
		return nil, err
	}

	return &http.Transport{
		DisableCompression: true,
		DisableKeepAlives:  !a.KeepAlive,
		Proxy:              http.ProxyFromEnvironment,
		TLSClientConfig:    tlsConf,
	}, nil
}
