package formatting

import (
	"fmt"
	"io"

	"clusterctl/internal/analysis"
	"clusterctl/internal/config"
	"clusterctl/internal/topology"
	xstrings "clusterctl/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
	out     io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options, w io.Writer) Formatter {
	return &TableFormatter{
		options: options,
		out:     w,
	}
}

// FormatOptions renders options with their tier.
func (f *TableFormatter) FormatOptions(opts []config.Option) error {
	if len(opts) == 0 {
		return f.formatEmptyMessage("📋", "No options set")
	}

	t := f.createTable()
	t.AppendHeader(f.header("KEY", "VALUE", "TIER"))
	for _, o := range opts {
		value := xstrings.Truncate(o.Value, xstrings.DefaultValueMaxLen)
		tier := string(o.Tier)
		if o.Tier == config.TierDynamic {
			tier = f.color(text.FgYellow, tier)
		}
		t.AppendRow(table.Row{f.color(text.FgHiCyan, o.Key), value, tier})
	}
	t.Render()
	return nil
}

// FormatNodes renders one row per node.
func (f *TableFormatter) FormatNodes(nodes []*topology.Node) error {
	if len(nodes) == 0 {
		return f.formatEmptyMessage("📋", "No nodes configured")
	}

	t := f.createTable()
	t.AppendHeader(f.header("NAME", "TYPE", "HOST", "ADDRESS", "COUNT", "ATTRIBUTES"))
	for _, n := range nodes {
		t.AppendRow(table.Row{
			f.color(text.FgHiCyan, n.Name),
			f.typeColor(n.Type),
			n.Host,
			n.Addr,
			n.Count,
			attrList(n),
		})
	}
	t.Render()
	return f.total(len(nodes), "nodes")
}

// FormatHosts renders one row per host.
func (f *TableFormatter) FormatHosts(nodes []*topology.Node) error {
	if len(nodes) == 0 {
		return f.formatEmptyMessage("📋", "No hosts configured")
	}

	t := f.createTable()
	t.AppendHeader(f.header("HOST", "ADDRESS", "NODE"))
	for _, n := range nodes {
		t.AppendRow(table.Row{f.color(text.FgHiCyan, n.Host), n.Addr, n.Name})
	}
	t.Render()
	return f.total(len(nodes), "hosts")
}

// FormatAnalyses renders analysis types with their enable flag.
func (f *TableFormatter) FormatAnalyses(statuses []analysis.Status) error {
	if len(statuses) == 0 {
		return f.formatEmptyMessage("📋", "No analysis types defined")
	}

	t := f.createTable()
	t.AppendHeader(f.header("TYPE", "STATUS", "MECHANISM", "DESCRIPTION"))
	for _, s := range statuses {
		status := f.color(text.FgGreen, enabledLabel(true))
		if !s.Enabled {
			status = f.color(text.FgRed, enabledLabel(false))
		}
		t.AppendRow(table.Row{f.color(text.FgHiCyan, s.Tag), status, s.Mechanism,
			xstrings.Truncate(s.Description, xstrings.DefaultValueMaxLen)})
	}
	t.Render()
	return nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(names ...string) table.Row {
	row := make(table.Row, 0, len(names))
	for _, name := range names {
		row = append(row, f.color(text.FgHiCyan, name))
	}
	return row
}

func (f *TableFormatter) typeColor(typ topology.NodeType) string {
	switch typ {
	case topology.TypeManager, topology.TypeStandalone:
		return f.color(text.FgHiMagenta, string(typ))
	case topology.TypeProxy:
		return f.color(text.FgHiBlue, string(typ))
	default:
		return f.color(text.FgHiWhite, string(typ))
	}
}

// color applies c to s when colored output is enabled.
func (f *TableFormatter) color(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}

// formatEmptyMessage prints empty result messages
func (f *TableFormatter) formatEmptyMessage(icon, message string) error {
	if f.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(f.out, "%s %s\n", f.color(text.FgYellow, icon), f.color(text.FgYellow, message))
	return err
}

func (f *TableFormatter) total(n int, noun string) error {
	if f.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(f.out, "\n%s %s %s\n",
		f.color(text.FgHiBlue, "Total:"),
		f.color(text.FgHiWhite, fmt.Sprint(n)),
		f.color(text.FgHiBlue, noun))
	return err
}
