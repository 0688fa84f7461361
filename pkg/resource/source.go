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
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// RedactedValue replaces secrets in Source.Redacted.
const RedactedValue = "REDACTED"

// UsesHarborAPI reports whether the Harbor dialect of the repository API was
// requested.
func (s Source) UsesHarborAPI() bool {
	return s.HarborAPI != nil && *s.HarborAPI
}

// VersionConstraints parses VersionRange. It returns nil constraints when no
// range is configured.
func (s Source) VersionConstraints() (*semver.Constraints, error) {
	if s.VersionRange == nil || *s.VersionRange == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(*s.VersionRange)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid version_range %q", *s.VersionRange)
	}
	return c, nil
}

// Redacted returns a copy of s with the password and the client key masked.
// Presence is preserved so the copy answers HasBasicAuth and
// HasFullTLSConfig like s.
func (s Source) Redacted() Source {
	out := s
	if s.BasicAuthPassword != nil && *s.BasicAuthPassword != "" {
		out.BasicAuthPassword = stringPtr(RedactedValue)
	}
	if s.TLSClientKey != nil {
		out.TLSClientKey = stringPtr(RedactedValue)
	}
	return out
}

func stringPtr(s string) *string {
	return &s
}
