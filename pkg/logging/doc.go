// Package logging provides the structured logging used across clusterctl.
//
// It is a thin layer over Go's slog package. Every entry carries a subsystem
// identifier and a printf-style message; errors are attached as an "error"
// attribute.
//
// # Usage
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "loaded %s", path)
//	logging.Warn("Topology", "%s: unknown key '%s' in section '%s'", file, key, section)
//	logging.Error("State", err, "cannot write %s", path)
//
// # Subsystems
//
//   - Bootstrap: configuration context phases
//   - Config: static configuration and substitution
//   - State: persisted dynamic variables
//   - Topology: node file parsing and validation
//   - Analysis: analysis-type registry
//   - Execute: local command execution
//   - Plugin: plugin collaborator hooks
//
// Warnings and errors logged before Init are written to stderr so first-run
// diagnostics are never lost.
package logging
