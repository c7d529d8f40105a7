// Package formatting renders clusterctl query results.
//
// Every command prints through a Formatter so that the same result can be
// shown as plain console text, a rich table, JSON or YAML.
package formatting

import (
	"fmt"
	"io"
	"os"

	"clusterctl/internal/analysis"
	"clusterctl/internal/config"
	"clusterctl/internal/topology"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatConsole, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use console, table, json or yaml)", s)
	}
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
	Color  bool // Enable colored output
}

// Formatter renders clusterctl results.
type Formatter interface {
	// FormatOptions prints configuration options.
	FormatOptions(opts []config.Option) error
	// FormatNodes prints cluster nodes.
	FormatNodes(nodes []*topology.Node) error
	// FormatHosts prints one node per host.
	FormatHosts(nodes []*topology.Node) error
	// FormatAnalyses prints analysis types and whether they are enabled.
	FormatAnalyses(statuses []analysis.Status) error

	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options, w io.Writer) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options. A nil
// writer means stdout.
func (f *factory) CreateFormatter(options Options, w io.Writer) Formatter {
	if w == nil {
		w = os.Stdout
	}
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options, w)
	case FormatYAML:
		return NewYAMLFormatter(options, w)
	case FormatTable:
		return NewTableFormatter(options, w)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options, w)
	}
}
