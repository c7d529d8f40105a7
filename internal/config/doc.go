// Package config provides the layered key/value configuration of clusterctl.
//
// Options live in two tiers:
//
//   - the static tier, read once from the base configuration file
//     (clusterctl.cfg) and seeded with option defaults during bootstrap
//   - the dynamic tier, read from and written back to the state file
//     (state.dat) so runtime variables survive restarts
//
// Lookups check the static tier first, then the dynamic tier, and default to
// the empty string. Keys are case-insensitive and stored lowercased.
//
// # File Format
//
// Both files share one line-oriented format:
//
//	# comment
//	spooldir = ${basedir}/spool
//	mailto   = ops@example.org
//
// Each non-blank, non-comment line must contain exactly one '='. Any other
// line is a fatal KindParse error that names the file and line. A missing
// file is only a warning, since the state file does not exist before the
// first run.
//
// # Substitution
//
// Values may reference other options with ${name} or ${name:default}:
//
//	store.Set("basedir", "/opt/monitor")
//	v, _ := store.Substitute("${basedir}/bin")        // "/opt/monitor/bin"
//	v, _ = store.Substitute("${missing:fallback}")    // "fallback"
//	v, _ = store.Substitute("${missing}")             // ""
//
// Expansion rescans its own output. A value that refers back to itself is
// detected after MaxSubstitutions replacements and reported as a
// KindSubstitution error instead of looping.
//
// # Errors
//
// Fatal conditions are reported as *ConfigurationError values carrying an
// ErrorKind; use IsKind to classify them.
package config
