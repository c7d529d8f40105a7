package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"clusterctl/internal/config"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates any failure, including fatal configuration errors.
	ExitCodeError = 1
)

// BaseDirEnv names the environment variable that overrides the default
// installation prefix.
const BaseDirEnv = "CLUSTERCTL_BASEDIR"

const defaultBaseDir = "/usr/local/clusterctl"

var (
	rootBaseDir      string
	rootConfigFile   string
	rootDebug        bool
	rootLogLevel     string
	rootOutputFormat string
	rootQuiet        bool
	rootNoColor      bool
)

// rootCmd represents the base command for the clusterctl application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "clusterctl",
	Short: "Inspect the configuration of a monitoring cluster",
	Long: `clusterctl reads the configuration of a distributed network monitoring
cluster: the static option file, the node file describing manager, proxy
and worker nodes, the persisted controller state and the table of
analysis types that can be switched on and off.`,
	// Errors are printed by Execute with their details.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It executes the root command and exits with a non-zero code on failure.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "clusterctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the exit code for err.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}

// printError writes err, with file and section details for configuration
// errors.
func printError(w io.Writer, err error) {
	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(w, "Error: %s\n", cfgErr.DetailedError())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func defaultBase() string {
	if dir := os.Getenv(BaseDirEnv); dir != "" {
		return dir
	}
	return defaultBaseDir
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootBaseDir, "basedir", defaultBase(), "Installation prefix (env "+BaseDirEnv+")")
	flags.StringVar(&rootConfigFile, "config", "", "Static configuration file (default is <basedir>/etc/clusterctl.cfg)")
	flags.BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	flags.StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVarP(&rootOutputFormat, "output", "o", "console", "Output format (console, table, json, yaml)")
	flags.BoolVarP(&rootQuiet, "quiet", "q", false, "Suppress decorative output")
	flags.BoolVar(&rootNoColor, "no-color", false, "Disable colored table output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newNodesCmd())
	rootCmd.AddCommand(newHostsCmd())
	rootCmd.AddCommand(newAnalysisCmd())
}
