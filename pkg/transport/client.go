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
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/chart-resource/chart-resource/internal/version"
	"github.com/chart-resource/chart-resource/pkg/resource"
)

// Client talks HTTP(S) to a chart repository.
type Client struct {
	opts   options
	client *http.Client
}

// New builds a client from the given options. The transport is derived from
// the agent unless WithTransport is used.
func New(opts ...Option) (*Client, error) {
	var c Client
	for _, opt := range opts {
		opt(&c.opts)
	}

	tr := c.opts.transport
	if tr == nil {
		var err error
		if tr, err = c.opts.agent.Transport(); err != nil {
			return nil, err
		}
	}

	userAgent := version.GetUserAgent()
	if c.opts.userAgent != "" {
		userAgent = c.opts.userAgent
	}

	c.client = &http.Client{
		Transport: &headerRoundTripper{
			next:      tr,
			headers:   c.opts.headers.Clone(),
			userAgent: userAgent,
		},
		Timeout: c.opts.timeout,
	}
	return &c, nil
}

// ForSource builds a client with the agent and headers derived from src.
// Extra options are applied after them.
func ForSource(src resource.Source, opts ...Option) (*Client, error) {
	base := []Option{
		WithAgent(resource.NewAgentOptions(src)),
		WithHeaders(resource.NewHeaders(src)),
	}
	return New(append(base, opts...)...)
}

// HTTPClient returns the underlying client. Requests sent through it get the
// configured headers.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// Get fetches href and returns the body. Any status outside of 2xx is an
// error.
func (c *Client) Get(ctx context.Context, href string) (*bytes.Buffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to build request for %s", href)
	}

	slog.Debug("fetching", slog.String("url", href))
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("failed to fetch %s : %s", href, resp.Status)
	}

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, errors.Wrapf(err, "unable to read response from %s", href)
	}
	return buf, nil
}

// headerRoundTripper adds default headers to outgoing requests. Headers
// already set on a request win.
type headerRoundTripper struct {
	next      http.RoundTripper
	headers   http.Header
	userAgent string
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, vs := range h.headers {
		if _, ok := req.Header[k]; ok {
			continue
		}
		req.Header[k] = append([]string(nil), vs...)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.next.RoundTrip(req)
}
