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
	"net/http"
)

// HasBasicAuth reports whether both basic auth fields are set and non-empty.
func HasBasicAuth(src Source) bool {
	return src.BasicAuthUsername != nil && *src.BasicAuthUsername != "" &&
		src.BasicAuthPassword != nil && *src.BasicAuthPassword != ""
}

// NewHeaders returns the headers to send to the chart repository. It holds a
// single Basic Authorization entry when HasBasicAuth is true and is empty
// otherwise.
//
// The credentials are joined with ":" as they are; a colon inside the
// username is not escaped.
func NewHeaders(src Source) http.Header {
	headers := http.Header{}
	if HasBasicAuth(src) {
		auth := *src.BasicAuthUsername + ":" + *src.BasicAuthPassword
		headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
	}
	return headers
}
