// Copyright 2026 The hash-tool Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package options

import (
	"time"

	"github.com/atikktokk/hash-tool/pkg/logging"
	"github.com/spf13/cobra"
)

// DefaultTimeout bounds command execution.
const DefaultTimeout = 3 * time.Minute

// ValidLogLevels lists the accepted --log-level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the accepted --log-format values.
var ValidLogFormats = []string{"text", "json"}

// RootOptions holds the flags shared by all subcommands.
type RootOptions struct {
	// OutputFile redirects command output from stdout to a file.
	OutputFile string
	// LogLevel sets the minimum log level.
	LogLevel string
	// LogFormat selects text or json log output.
	LogFormat string
	// Timeout bounds command execution.
	Timeout time.Duration
}

var _ Interface = (*RootOptions)(nil)

// AddFlags implements Interface.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"redirect command output to a file")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"minimum log level (debug, info, warn, error, silent)")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"log output format (text, json)")
	cmd.PersistentFlags().DurationVar(&o.Timeout, "timeout", DefaultTimeout,
		"maximum duration for command execution")
}

// GetLogLevel returns the parsed log level.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// NewLogger builds a logger from the root flags.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.NewLogger(logging.LoggerOptions{
		Level:     o.GetLogLevel(),
		Format:    logging.ParseLogFormat(o.LogFormat),
		ShowLevel: true,
	})
}
