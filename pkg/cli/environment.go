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
Package cli describes the operating environment of the chart-resource CLI.

Settings come from CHART_RESOURCE_* environment variables and can be
overridden with command line flags.
*/
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

const defaultTimeout = 30 * time.Second

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// Debug indicates whether or not debug logging is enabled.
	Debug bool
	// Timeout bounds a single request to the chart repository. Zero means no limit.
	Timeout time.Duration
}

func New() *EnvSettings {
	return &EnvSettings{
		Debug:   envBoolOr("CHART_RESOURCE_DEBUG", false),
		Timeout: envDurationOr("CHART_RESOURCE_TIMEOUT", defaultTimeout),
	}
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "time to wait for a single request to the chart repository")
}

func envBoolOr(name string, def bool) bool {
	if name == "" {
		return def
	}
	envVal := os.Getenv(name)
	if envVal == "" {
		return def
	}
	ret, err := strconv.ParseBool(envVal)
	if err != nil {
		return def
	}
	return ret
}

func envDurationOr(name string, def time.Duration) time.Duration {
	envVal, ok := os.LookupEnv(name)
	if !ok || envVal == "" {
		return def
	}
	ret, err := time.ParseDuration(envVal)
	if err != nil {
		return def
	}
	return ret
}

// EnvVars lists the effective settings under their environment variable names.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"CHART_RESOURCE_DEBUG":   fmt.Sprint(s.Debug),
		"CHART_RESOURCE_TIMEOUT": s.Timeout.String(),
	}
}
