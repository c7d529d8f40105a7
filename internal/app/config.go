package app

import (
	"io"
	"path/filepath"

	"clusterctl/internal/options"
)

// DefaultConfigFile is the static configuration file, relative to BaseDir.
const DefaultConfigFile = "etc/clusterctl.cfg"

// Config holds the application configuration
type Config struct {
	// Installation prefix, seeded as the "basedir" option.
	BaseDir string

	// Static configuration file. Relative paths are resolved against BaseDir.
	ConfigFile string

	// Controller version, seeded as the "version" option.
	Version string

	// Debug settings
	Debug bool

	// Log level name (debug, info, warn, error). Debug takes precedence.
	LogLevel string

	// Log destination. Defaults to stderr; io.Discard silences logging.
	LogOutput io.Writer

	// Option descriptors applied during bootstrap. Defaults to options.Defaults().
	Options []options.Option
}

// NewConfig creates a new application configuration
func NewConfig(baseDir, configFile, version string, debug bool) *Config {
	return &Config{
		BaseDir:    baseDir,
		ConfigFile: configFile,
		Version:    version,
		Debug:      debug,
	}
}

// configPath returns the absolute location of the static configuration file.
func (c *Config) configPath() string {
	file := c.ConfigFile
	if file == "" {
		file = DefaultConfigFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.BaseDir, file)
}

func (c *Config) options() []options.Option {
	if c.Options != nil {
		return c.Options
	}
	return options.Defaults()
}
