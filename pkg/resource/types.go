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

// Source is the static configuration block of the resource: where the chart
// repository lives and how to authenticate against it.
//
// Optional fields are pointers so that an absent field and an empty value stay
// distinguishable.
type Source struct {
	// ServerURL is the base URL of the chart repository server.
	ServerURL string `json:"server_url"`
	// ChartName is the name of the chart tracked by the resource.
	ChartName string `json:"chart_name"`
	// VersionRange restricts the versions a check reports, e.g. ">=1.2.0 <2".
	VersionRange *string `json:"version_range,omitempty"`

	BasicAuthUsername *string `json:"basic_auth_username,omitempty"`
	BasicAuthPassword *string `json:"basic_auth_password,omitempty"`

	// HarborAPI selects the Harbor flavour of the repository API instead of
	// the ChartMuseum one.
	HarborAPI *bool `json:"harbor_api,omitempty"`

	// PEM encoded TLS material. Client TLS is only used when all three are set.
	TLSCACert     *string `json:"tls_ca_cert,omitempty"`
	TLSClientCert *string `json:"tls_client_cert,omitempty"`
	TLSClientKey  *string `json:"tls_client_key,omitempty"`
}

// Version identifies one published chart.
type Version struct {
	Version string `json:"version"`
	Digest  string `json:"digest"`
}

// MetadataPair is a single name/value entry shown alongside a version.
type MetadataPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CheckRequest asks for the versions at or after Version. A nil Version means
// nothing has been seen yet.
type CheckRequest struct {
	Source  Source   `json:"source"`
	Version *Version `json:"version,omitempty"`
}

// CheckResponse lists versions, oldest first.
type CheckResponse []Version

// InParams controls where the fetched chart is written.
type InParams struct {
	TargetBasename *string `json:"target_basename,omitempty"`
}

// InRequest fetches the chart identified by Version.
type InRequest struct {
	Source  Source   `json:"source"`
	Version Version  `json:"version"`
	Params  InParams `json:"params"`
}

// InResponse reports the fetched version and its metadata.
type InResponse struct {
	Version  Version        `json:"version"`
	Metadata []MetadataPair `json:"metadata"`
}

// OutParams describes the chart to publish.
type OutParams struct {
	// Chart is the path to the chart directory or packaged archive.
	Chart string `json:"chart"`

	Sign          *bool   `json:"sign,omitempty"`
	KeyData       *string `json:"key_data,omitempty"`
	KeyFile       *string `json:"key_file,omitempty"`
	KeyPassphrase *string `json:"key_passphrase,omitempty"`

	// Version overrides the chart version; VersionFile reads it from a file.
	Version     *string `json:"version,omitempty"`
	VersionFile *string `json:"version_file,omitempty"`

	Force            *bool `json:"force,omitempty"`
	DependencyUpdate *bool `json:"dependency_update,omitempty"`
}

// OutRequest publishes a chart.
type OutRequest struct {
	Source Source    `json:"source"`
	Params OutParams `json:"params"`
}

// OutResponse reports the published version and its metadata.
type OutResponse InResponse
