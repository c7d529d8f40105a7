package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a fatal configuration error.
type ErrorKind string

const (
	// KindParse marks a syntactically invalid file or line.
	KindParse ErrorKind = "parse"
	// KindIO marks a file that exists but cannot be read or written.
	KindIO ErrorKind = "io"
	// KindTopology marks a violated cluster-shape invariant.
	KindTopology ErrorKind = "topology"
	// KindHost marks a missing or unresolvable node host.
	KindHost ErrorKind = "host"
	// KindVersion marks a sensor version that cannot be determined.
	KindVersion ErrorKind = "version"
	// KindSubstitution marks a ${...} expansion that does not terminate.
	KindSubstitution ErrorKind = "substitution"
	// KindCommand marks a required helper command that failed.
	KindCommand ErrorKind = "command"
)

// ConfigurationError is a fatal error raised while loading or validating
// configuration. It identifies the offending file and, where applicable,
// the line number or section name.
type ConfigurationError struct {
	Kind       ErrorKind `json:"kind"`
	FilePath   string    `json:"filePath,omitempty"`
	Section    string    `json:"section,omitempty"`
	LineNumber int       `json:"lineNumber,omitempty"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	var b strings.Builder
	if ce.FilePath != "" {
		b.WriteString(ce.FilePath)
		if ce.LineNumber > 0 {
			fmt.Fprintf(&b, ":%d", ce.LineNumber)
		}
		b.WriteString(": ")
	}
	b.WriteString(ce.Message)
	if ce.Section != "" {
		fmt.Fprintf(&b, " in section '%s'", ce.Section)
	}
	if ce.Details != "" {
		fmt.Fprintf(&b, " [%s]", ce.Details)
	}
	return b.String()
}

func (ce *ConfigurationError) Unwrap() error {
	return ce.Err
}

// DetailedError returns a multi-line description with all context.
func (ce *ConfigurationError) DetailedError() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Configuration Error (%s)", ce.Kind))
	if ce.FilePath != "" {
		parts = append(parts, fmt.Sprintf("  File: %s", ce.FilePath))
	}
	if ce.LineNumber > 0 {
		parts = append(parts, fmt.Sprintf("  Line: %d", ce.LineNumber))
	}
	if ce.Section != "" {
		parts = append(parts, fmt.Sprintf("  Section: %s", ce.Section))
	}
	parts = append(parts, fmt.Sprintf("  Error: %s", ce.Message))
	if ce.Details != "" {
		parts = append(parts, fmt.Sprintf("  Details: %s", ce.Details))
	}
	if ce.Err != nil {
		parts = append(parts, fmt.Sprintf("  Cause: %v", ce.Err))
	}

	return strings.Join(parts, "\n")
}

// NewError creates a ConfigurationError of the given kind for a file.
func NewError(kind ErrorKind, filePath, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Kind:     kind,
		FilePath: filePath,
		Message:  fmt.Sprintf(format, args...),
	}
}

// InSection sets the section name and returns the error for chaining.
func (ce *ConfigurationError) InSection(section string) *ConfigurationError {
	ce.Section = section
	return ce
}

// AtLine sets the line number and returns the error for chaining.
func (ce *ConfigurationError) AtLine(line int) *ConfigurationError {
	ce.LineNumber = line
	return ce
}

// WithDetails sets the details and returns the error for chaining.
func (ce *ConfigurationError) WithDetails(details string) *ConfigurationError {
	ce.Details = details
	return ce
}

// Wrap attaches an underlying cause and returns the error for chaining.
func (ce *ConfigurationError) Wrap(err error) *ConfigurationError {
	ce.Err = err
	return ce
}

// IsKind reports whether err, or any error it wraps, is a
// ConfigurationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
