package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionSensor bool

// newVersionCmd creates the Cobra command for displaying the application version.
// With --sensor it also determines the version of the installed sensor
// binary and records it in the state file.
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of clusterctl",
		Long: `Print the version number of clusterctl.

With --sensor the sensor binary configured as SensorBinary is run to
determine its version, which is then stored in the state file. A version
recorded by an earlier run is used when the binary is not available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "clusterctl version %s\n", rootCmd.Version)
			if !versionSensor {
				return nil
			}
			return printSensorVersion(cmd)
		},
	}
	cmd.Flags().BoolVar(&versionSensor, "sensor", false, "Also determine the sensor version")
	return cmd
}

func printSensorVersion(cmd *cobra.Command) error {
	a, err := loadApplication(cmd)
	if err != nil {
		return err
	}
	if err := a.DetermineSensorVersion(commandContext(cmd)); err != nil {
		return err
	}
	if err := a.SaveState(); err != nil {
		return err
	}
	version, _ := a.State().Get("sensorversion")
	fmt.Fprintf(cmd.OutOrStdout(), "sensor version %s\n", version)
	return nil
}
