package cmd

import (
	"context"
	"io"
	"os"

	"clusterctl/internal/app"
	"clusterctl/internal/formatting"
	"clusterctl/internal/plugin"

	"github.com/spf13/cobra"
)

// Hooks replaced by tests.
var (
	appOptions []app.Option
	plugins    = plugin.NewRegistry
)

// loadApplication runs both bootstrap phases with the registered plugins.
func loadApplication(cmd *cobra.Command) (*app.Application, error) {
	ctx := commandContext(cmd)

	cfg := app.NewConfig(rootBaseDir, rootConfigFile, GetVersion(), rootDebug)
	cfg.LogLevel = rootLogLevel
	cfg.LogOutput = cmd.ErrOrStderr()

	a, err := app.NewApplication(ctx, cfg, appOptions...)
	if err != nil {
		return nil, err
	}
	if err := a.InitPostPlugins(ctx, plugins()); err != nil {
		return nil, err
	}
	return a, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newFormatter creates the formatter selected by the output flags.
func newFormatter(cmd *cobra.Command) (formatting.Formatter, error) {
	format, err := formatting.ParseFormat(rootOutputFormat)
	if err != nil {
		return nil, err
	}
	opts := formatting.Options{
		Format: format,
		Quiet:  rootQuiet,
		Color:  !rootNoColor && isTerminal(cmd.OutOrStdout()),
	}
	return formatting.NewFactory().CreateFormatter(opts, cmd.OutOrStdout()), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
