// Package app provides the configuration context of a clusterctl process.
//
// An Application is constructed once and passed to everything that needs
// configuration. It replaces any notion of a process-wide singleton and makes
// the bootstrap order explicit.
//
// # Bootstrap Phases
//
// Phase one, NewApplication, needs nothing but the installation prefix:
//
//  1. Configure logging
//  2. Read the static configuration file (etc/clusterctl.cfg)
//  3. Seed "basedir" and "version"
//  4. Apply every option descriptor default, in order
//  5. Derive "mailto", "mailfrom", "home", "mailalarmsto", "os" and "time"
//
// Phase two, InitPostPlugins, runs after plugins are registered:
//
//  1. Let plugins extend the node attribute schema
//  2. Parse and validate the node file
//  3. Read the persisted state
//  4. Derive the "standalone" option
//  5. Load the analysis table and let plugins extend it
//  6. Clear the "cron" flag
//
// Every fatal condition stops the sequence at the first failure; accessors
// for the topology and the analysis registry return nil until phase two has
// completed successfully.
//
// # Collaborators
//
// Command execution, host resolution and the environment are injected with
// WithExecutor, WithResolver and WithEnvironment. The defaults use the local
// machine.
//
// # Sensor Version
//
// DetermineSensorVersion runs "${sensorbinary} -v" and stores the parsed
// version in the state. A version cached by an earlier run is accepted when
// the binary is unavailable.
package app
