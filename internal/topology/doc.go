// Package topology parses and validates the node file that declares which
// hosts run which cluster roles.
//
// The node file is INI-style. Each section names one node:
//
//	[manager]
//	type = manager
//	host = 10.0.0.1
//
//	[proxy-1]
//	type = proxy
//	host = 10.0.0.1
//
//	[worker-1]
//	type = worker
//	host = 10.0.0.2
//	interface = eth0
//
// Keys are checked against a Schema; unknown keys are dropped with a
// warning. Dotted keys are normalized to underscores, and values in a
// DEFAULT section apply to every node that does not set them.
//
// Load enforces the cluster shape: at most one manager, a standalone node
// must be alone, a non-standalone cluster needs a manager and a proxy, and
// the manager must run on this machine at a non-loopback address. Every
// node host is resolved to an address, and nodes are numbered per type in
// declaration order.
package topology
