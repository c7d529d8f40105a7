package cmd

import (
	"github.com/spf13/cobra"
)

var configDynamic bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "List configuration options",
		Long: `List every configuration option after defaults and substitutions
have been applied, sorted by name, followed by the variables from the state file.
Use --dynamic=false to list the static options only.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
	cmd.Flags().BoolVar(&configDynamic, "dynamic", true, "Include state variables")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := loadApplication(cmd)
	if err != nil {
		return err
	}
	f, err := newFormatter(cmd)
	if err != nil {
		return err
	}
	return f.FormatOptions(a.Store().Options(configDynamic))
}
