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
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pkg/errors"
)

// Destination returns the path inside dir the fetched chart is written to.
// TargetBasename is used as the file name when set, fallback otherwise.
// The result never escapes dir, whatever the name contains.
func (p InParams) Destination(dir, fallback string) (string, error) {
	name := fallback
	if p.TargetBasename != nil && *p.TargetBasename != "" {
		name = *p.TargetBasename
	}
	if name == "" {
		return "", errors.New("no target file name given")
	}

	path, err := securejoin.SecureJoin(dir, name)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve %q inside %q", name, dir)
	}
	return path, nil
}
