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

// Package logging provides a leveled, structured logging interface with a
// built-in implementation and pluggable output formats. Any backend that
// satisfies Logger (slog, zap, logr adapters) can be injected instead.
package logging

import "strings"

// LogLevel is the severity of a log message.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level string, defaulting to LevelInfo for
// unrecognized input.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat selects the output format.
type LogFormat int

const (
	// FormatText outputs human-readable text.
	FormatText LogFormat = iota
	// FormatJSON outputs one JSON object per line.
	FormatJSON
)

// ParseLogFormat parses a format string, defaulting to FormatText.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is the leveled logging interface consumed by the rest of the
// module.
type Logger interface {
	// Debug logs at debug level with printf-style formatting.
	Debug(format string, args ...interface{})
	// Info logs at info level with printf-style formatting.
	Info(format string, args ...interface{})
	// Warn logs at warn level with printf-style formatting.
	Warn(format string, args ...interface{})
	// Error logs at error level with printf-style formatting.
	Error(format string, args ...interface{})

	// GetLevel returns the current minimum level.
	GetLevel() LogLevel

	// WithField returns a Logger with the key-value pair attached to
	// every entry.
	WithField(key string, value interface{}) Logger
	// WithFields returns a Logger with all given fields attached.
	WithFields(fields map[string]interface{}) Logger
}

// Default returns an info-level text logger writing to stderr.
func Default() Logger {
	return NewLogger(LoggerOptions{Level: LevelInfo, Format: FormatText})
}

// Silent returns a logger that discards everything.
func Silent() Logger {
	return NewLogger(LoggerOptions{Level: LevelSilent})
}
