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

/*
Package resource holds the JSON contracts of the chart repository CI resource
and the helpers its check, in and out commands share.

The three commands each receive one JSON document on standard input and answer
with one JSON document on standard output. ReadRequest and WriteResponse cover
that exchange. NewAgentOptions and NewHeaders turn the Source block of a
request into the TLS and authentication settings of the outbound HTTPS calls.

Partially supplied TLS or basic auth settings are not an error: they are
ignored as a whole. HasFullTLSConfig and HasBasicAuth expose that policy.
*/
package resource
