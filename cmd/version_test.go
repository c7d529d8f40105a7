package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	versionCmd := newVersionCmd()

	if versionCmd.Use != "version" {
		t.Errorf("Expected Use to be 'version', got %s", versionCmd.Use)
	}

	if versionCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if versionCmd.RunE == nil {
		t.Error("Expected RunE function to be set")
	}

	if versionCmd.Flags().Lookup("sensor") == nil {
		t.Error("Expected --sensor flag")
	}
}

func TestVersionCommandExecution(t *testing.T) {
	testVersion := "1.2.3-test"
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = testVersion

	versionCmd := newVersionCmd()
	versionSensor = false

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	if err := versionCmd.RunE(versionCmd, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "clusterctl version " + testVersion + "\n"
	if output := buf.String(); output != expected {
		t.Errorf("Expected output %q, got %q", expected, output)
	}
}

func TestVersionCommand_Sensor(t *testing.T) {
	base := installation(t, testNodeFile)
	useExecutor(t, stubExecutor{sensorOutput: "sensor version 3.0.2-debug"})

	out, err := execute(t, base, "version", "--sensor")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "sensor version 3.0.2\n"))

	state, err := os.ReadFile(filepath.Join(base, "spool", "state.dat"))
	require.NoError(t, err)
	assert.Contains(t, string(state), "sensorversion = 3.0.2")

	// Cached version survives a missing binary.
	useExecutor(t, stubExecutor{})
	out, err = execute(t, base, "version", "--sensor")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "sensor version 3.0.2\n"))
}

func TestVersionCommand_SensorMissing(t *testing.T) {
	base := installation(t, testNodeFile)

	_, err := execute(t, base, "version", "--sensor")
	assert.Error(t, err)
}
