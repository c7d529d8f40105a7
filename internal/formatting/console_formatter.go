package formatting

import (
	"fmt"
	"io"

	"clusterctl/internal/analysis"
	"clusterctl/internal/config"
	"clusterctl/internal/topology"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
	out     io.Writer
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options, w io.Writer) Formatter {
	return &ConsoleFormatter{
		options: options,
		out:     w,
	}
}

// FormatOptions prints one "key = value" line per option.
func (f *ConsoleFormatter) FormatOptions(opts []config.Option) error {
	for _, o := range opts {
		if _, err := fmt.Fprintf(f.out, "%s = %s\n", o.Key, o.Value); err != nil {
			return err
		}
	}
	return nil
}

// FormatNodes prints each node with its attributes.
func (f *ConsoleFormatter) FormatNodes(nodes []*topology.Node) error {
	if len(nodes) == 0 {
		return f.empty("No nodes configured.")
	}
	for _, n := range nodes {
		line := fmt.Sprintf("%s - type=%s host=%s addr=%s count=%d", n.Name, n.Type, n.Host, n.Addr, n.Count)
		if attrs := attrList(n); attrs != "" {
			line += " " + attrs
		}
		if _, err := fmt.Fprintln(f.out, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatHosts prints host and address for each node.
func (f *ConsoleFormatter) FormatHosts(nodes []*topology.Node) error {
	if len(nodes) == 0 {
		return f.empty("No hosts configured.")
	}
	for _, n := range nodes {
		if _, err := fmt.Fprintf(f.out, "%-30s %s\n", n.Host, n.Addr); err != nil {
			return err
		}
	}
	return nil
}

// FormatAnalyses prints the analysis table.
func (f *ConsoleFormatter) FormatAnalyses(statuses []analysis.Status) error {
	for _, s := range statuses {
		if _, err := fmt.Fprintf(f.out, "%15s  %-8s  %s\n", s.Tag, enabledLabel(s.Enabled), s.Description); err != nil {
			return err
		}
	}
	return nil
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}

func (f *ConsoleFormatter) empty(msg string) error {
	if f.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintln(f.out, msg)
	return err
}
