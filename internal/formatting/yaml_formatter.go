package formatting

import (
	"fmt"
	"io"

	"clusterctl/internal/analysis"
	"clusterctl/internal/config"
	"clusterctl/internal/topology"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
	out     io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options, w io.Writer) Formatter {
	return &YAMLFormatter{
		options: options,
		out:     w,
	}
}

// FormatOptions prints the options as a YAML sequence.
func (f *YAMLFormatter) FormatOptions(opts []config.Option) error {
	return f.write(opts)
}

// FormatNodes prints the nodes as a YAML sequence.
func (f *YAMLFormatter) FormatNodes(nodes []*topology.Node) error {
	return f.write(nodes)
}

// FormatHosts prints the host nodes as a YAML sequence.
func (f *YAMLFormatter) FormatHosts(nodes []*topology.Node) error {
	return f.write(nodes)
}

// FormatAnalyses prints the analysis types as a YAML sequence.
func (f *YAMLFormatter) FormatAnalyses(statuses []analysis.Status) error {
	return f.write(statuses)
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

func (f *YAMLFormatter) write(data interface{}) error {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to format YAML: %w", err)
	}
	_, err = f.out.Write(yamlBytes)
	return err
}
