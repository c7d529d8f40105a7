package topology

import (
	"context"
	"fmt"
	"net"
)

// Resolver maps a node host to an address.
type Resolver interface {
	Resolve(ctx context.Context, host string) (string, error)
}

// LocalChecker reports whether a node runs on the current machine. It is
// provided by the execution layer.
type LocalChecker interface {
	IsLocal(n *Node) bool
}

// NetResolver resolves hosts to their first IPv4 address using the system
// resolver. There is no timeout beyond what ctx carries.
type NetResolver struct {
	Resolver *net.Resolver
}

// Resolve implements Resolver.
func (r NetResolver) Resolve(ctx context.Context, host string) (string, error) {
	res := r.Resolver
	if res == nil {
		res = net.DefaultResolver
	}

	ips, err := res.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("no IPv4 address for %s", host)
	}
	return ips[0].String(), nil
}

// isLoopback reports whether addr is a loopback address.
func isLoopback(addr string) bool {
	ip := net.ParseIP(addr)
	return ip != nil && ip.IsLoopback()
}
