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
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ReadRequest reads r until EOF and decodes the whole input as a single JSON
// document into a T.
//
// The input is not decoded incrementally. If ctx is done before EOF the call
// returns ctx.Err(); the pending read is abandoned.
func ReadRequest[T any](ctx context.Context, r io.Reader) (T, error) {
	var req T

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return req, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return req, errors.Wrap(res.err, "unable to read request")
		}
		if err := json.Unmarshal(res.data, &req); err != nil {
			return req, errors.Wrap(err, "malformed request")
		}
		return req, nil
	}
}

// WriteResponse writes v to w as one JSON document terminated by a newline.
func WriteResponse(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return errors.Wrap(err, "unable to write response")
	}
	return nil
}
