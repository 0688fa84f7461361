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

package transport

import (
	"net/http"
	"time"

	"github.com/chart-resource/chart-resource/pkg/resource"
)

// options are the parameters used to build a Client.
type options struct {
	agent     resource.AgentOptions
	headers   http.Header
	userAgent string
	timeout   time.Duration
	transport *http.Transport
}

// Option allows specifying various settings configurable by the user for
// overriding the defaults used when talking to a repository.
type Option func(*options)

// WithAgent sets the TLS agent the client dials with.
func WithAgent(agent resource.AgentOptions) Option {
	return func(opts *options) {
		opts.agent = agent
	}
}

// WithHeaders adds headers to every request. A header given again by a later
// call replaces the earlier values.
func WithHeaders(headers http.Header) Option {
	return func(opts *options) {
		if opts.headers == nil {
			opts.headers = http.Header{}
		}
		for k, vs := range headers {
			opts.headers.Del(k)
			for _, v := range vs {
				opts.headers.Add(k, v)
			}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(opts *options) {
		opts.userAgent = userAgent
	}
}

// WithTimeout sets the timeout for requests
func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// WithTransport replaces the transport built from the agent.
func WithTransport(transport *http.Transport) Option {
	return func(opts *options) {
		opts.transport = transport
	}
}
