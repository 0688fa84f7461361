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

package tlsutil

import (
	"crypto/tls"
	"crypto/x509"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// TLSConfigOptions collects the PEM material handed over by the options.
type TLSConfigOptions struct {
	certPEMBlock, keyPEMBlock []byte
	caPEMBlock                []byte
}

type TLSConfigOption func(options *TLSConfigOptions) error

// WithCertKeyPairPEM sets the client identity. Both blocks empty means no
// client certificate; only one of them set is an error.
func WithCertKeyPairPEM(certPEM, keyPEM string) TLSConfigOption {
	return func(options *TLSConfigOptions) error {
		if certPEM == "" && keyPEM == "" {
			return nil
		}
		if certPEM == "" {
			return errors.New("client key given without a client certificate")
		}
		if keyPEM == "" {
			return errors.New("client certificate given without a client key")
		}

		options.certPEMBlock = []byte(certPEM)
		options.keyPEMBlock = []byte(keyPEM)

		return nil
	}
}

// WithCAPEM replaces the system roots with the certificates in caPEM.
func WithCAPEM(caPEM string) TLSConfigOption {
	return func(options *TLSConfigOptions) error {
		if caPEM == "" {
			return nil
		}

		options.caPEMBlock = []byte(caPEM)

		return nil
	}
}

func NewTLSConfig(options ...TLSConfigOption) (*tls.Config, error) {
	to := TLSConfigOptions{}

	var result *multierror.Error
	for _, option := range options {
		if err := option(&to); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	config := tls.Config{}

	if len(to.certPEMBlock) > 0 && len(to.keyPEMBlock) > 0 {
		cert, err := tls.X509KeyPair(to.certPEMBlock, to.keyPEMBlock)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load cert from key pair")
		}

		config.Certificates = []tls.Certificate{cert}
	}

	if len(to.caPEMBlock) > 0 {
		cp := x509.NewCertPool()
		if !cp.AppendCertsFromPEM(to.caPEMBlock) {
			return nil, errors.New("failed to append certificates from pem block")
		}

		config.RootCAs = cp
	}

	return &config, nil
}
