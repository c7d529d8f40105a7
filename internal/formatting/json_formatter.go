package formatting

import (
	"encoding/json"
	"fmt"
	"io"

	"clusterctl/internal/analysis"
	"clusterctl/internal/config"
	"clusterctl/internal/topology"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	options Options
	out     io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options, w io.Writer) Formatter {
	return &JSONFormatter{
		options: options,
		out:     w,
	}
}

// FormatOptions prints the options as a JSON array.
func (f *JSONFormatter) FormatOptions(opts []config.Option) error {
	if opts == nil {
		opts = []config.Option{}
	}
	return f.write(opts)
}

// FormatNodes prints the nodes as a JSON array.
func (f *JSONFormatter) FormatNodes(nodes []*topology.Node) error {
	if nodes == nil {
		nodes = []*topology.Node{}
	}
	return f.write(nodes)
}

// FormatHosts prints the host nodes as a JSON array.
func (f *JSONFormatter) FormatHosts(nodes []*topology.Node) error {
	return f.FormatNodes(nodes)
}

// FormatAnalyses prints the analysis types as a JSON array.
func (f *JSONFormatter) FormatAnalyses(statuses []analysis.Status) error {
	if statuses == nil {
		statuses = []analysis.Status{}
	}
	return f.write(statuses)
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

func (f *JSONFormatter) write(data interface{}) error {
	_, err := fmt.Fprintln(f.out, f.marshal(data))
	return err
}

// marshal converts data to JSON string with appropriate formatting
func (f *JSONFormatter) marshal(data interface{}) string {
	if !f.options.Quiet {
		return PrettyJSON(data)
	}

	// Compact JSON for quiet mode
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf(`{"error": "Failed to format JSON: %v"}`, err)
	}
	return string(jsonBytes)
}
