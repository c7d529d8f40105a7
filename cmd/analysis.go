package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAnalysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "List and toggle analysis types",
		Long: `Analysis types are read from the file named by AnalysisCfg. Every type is
enabled unless it has been disabled; the setting is kept in the state file.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List analysis types and whether they are enabled",
			Args:  cobra.NoArgs,
			RunE:  runAnalysisList,
		},
		newAnalysisToggleCmd("enable", true),
		newAnalysisToggleCmd("disable", false),
	)
	return cmd
}

func newAnalysisToggleCmd(verb string, enable bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " TYPE...",
		Short: fmt.Sprintf("%s analysis types", verb),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysisToggle(cmd, args, enable)
		},
	}
}

func runAnalysisList(cmd *cobra.Command, args []string) error {
	a, err := loadApplication(cmd)
	if err != nil {
		return err
	}
	f, err := newFormatter(cmd)
	if err != nil {
		return err
	}
	return f.FormatAnalyses(a.Analysis().All())
}

func runAnalysisToggle(cmd *cobra.Command, tags []string, enable bool) error {
	a, err := loadApplication(cmd)
	if err != nil {
		return err
	}

	reg := a.Analysis()
	for _, tag := range tags {
		if !reg.IsValid(tag) {
			return fmt.Errorf("unknown analysis type '%s'", tag)
		}
	}

	for _, tag := range tags {
		prev := reg.Toggle(tag, enable)
		if !rootQuiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (was %s)\n", tag, stateLabel(enable), stateLabel(prev))
		}
	}
	return a.SaveState()
}

func stateLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
