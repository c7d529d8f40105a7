// Package execute runs helper commands and file checks on the machine the
// controller runs on. Dispatch to remote nodes is handled elsewhere; nodes
// that are not local are reported as such.
package execute

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"

	"clusterctl/internal/topology"
	"clusterctl/pkg/logging"
)

// Local implements the execution collaborator for the current machine.
type Local struct {
	// Hostname and InterfaceAddrs default to os.Hostname and
	// net.InterfaceAddrs. Tests replace them.
	Hostname       func() (string, error)
	InterfaceAddrs func() ([]net.Addr, error)
	// Shell runs CaptureCmd commands. Defaults to /bin/sh.
	Shell string
}

// NewLocal returns a Local bound to the real host.
func NewLocal() *Local {
	return &Local{
		Hostname:       os.Hostname,
		InterfaceAddrs: net.InterfaceAddrs,
		Shell:          "/bin/sh",
	}
}

// IsLocal reports whether n runs on this machine: its address is loopback
// or bound to a local interface, or its host equals the local hostname.
func (l *Local) IsLocal(n *topology.Node) bool {
	if n == nil {
		return true
	}

	if ip := net.ParseIP(n.Addr); ip != nil {
		if ip.IsLoopback() {
			return true
		}
		interfaceAddrs := l.InterfaceAddrs
		if interfaceAddrs == nil {
			interfaceAddrs = net.InterfaceAddrs
		}
		if addrs, err := interfaceAddrs(); err == nil {
			for _, a := range addrs {
				if ipNet, ok := a.(*net.IPNet); ok && ipNet.IP.Equal(ip) {
					return true
				}
			}
		} else {
			logging.Warn("Execute", "cannot list local interface addresses: %v", err)
		}
	}

	hostnameFn := l.Hostname
	if hostnameFn == nil {
		hostnameFn = os.Hostname
	}
	if hostname, err := hostnameFn(); err == nil {
		short, _, _ := strings.Cut(hostname, ".")
		if strings.EqualFold(n.Host, hostname) || strings.EqualFold(n.Host, short) {
			return true
		}
	}
	return false
}

// CaptureCmd runs command through the shell and returns its standard
// output split into lines. A non-zero exit status is returned as an error
// together with whatever output was produced.
func (l *Local) CaptureCmd(ctx context.Context, command string) ([]string, error) {
	shell := l.Shell
	if shell == "" {
		shell = "/bin/sh"
	}

	logging.Debug("Execute", "running '%s'", command)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	lines := splitLines(stdout.String())
	if err != nil {
		return lines, fmt.Errorf("command '%s' failed: %w: %s", command, err, strings.TrimSpace(stderr.String()))
	}
	return lines, nil
}

// Exists reports whether path exists on node. A nil node means this
// machine. Paths on other nodes cannot be checked from here and report
// false.
func (l *Local) Exists(n *topology.Node, path string) bool {
	if n != nil && !l.IsLocal(n) {
		logging.Warn("Execute", "cannot check %s on remote node %s", path, n.Name)
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
