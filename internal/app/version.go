package app

import (
	"context"
	"regexp"
	"strings"

	"clusterctl/internal/config"
	"clusterctl/pkg/logging"
)

var sensorVersionPattern = regexp.MustCompile(`.* version ([^ ]*).*$`)

// DetermineSensorVersion runs the sensor binary to find out its version and
// records it, together with the binary path, in the persisted state as
// "sensorversion" and "sensor". When the binary cannot be run, a version
// cached in the state from an earlier run is kept.
func (a *Application) DetermineSensorVersion(ctx context.Context) error {
	binary, err := a.store.Substitute("${sensorbinary}")
	if err != nil {
		return err
	}

	var output string
	if a.executor.Exists(nil, binary) {
		lines, err := a.executor.CaptureCmd(ctx, binary+" -v 2>&1")
		if err == nil && len(lines) > 0 {
			output = lines[0]
		} else if err != nil {
			logging.Warn("Bootstrap", "running %s failed: %v", binary, err)
		}
	}

	if output == "" {
		if cached, ok := a.state.Get("sensorversion"); ok {
			logging.Debug("Bootstrap", "using cached sensor version %s", cached)
			return nil
		}
		return config.NewError(config.KindVersion, binary, "cannot find sensor binary to determine version")
	}

	m := sensorVersionPattern.FindStringSubmatch(output)
	if m == nil {
		return config.NewError(config.KindVersion, binary, "cannot determine sensor version").
			WithDetails(strings.TrimSpace(output))
	}
	version := strings.TrimSuffix(m[1], "-debug")

	a.state.Set("sensorversion", version)
	a.state.Set("sensor", binary)
	logging.Info("Bootstrap", "sensor version %s", version)
	return nil
}
