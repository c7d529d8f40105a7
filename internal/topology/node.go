package topology

import (
	"fmt"
	"strconv"
)

// NodeType is the role a node plays in the cluster.
type NodeType string

const (
	TypeManager    NodeType = "manager"
	TypeProxy      NodeType = "proxy"
	TypeWorker     NodeType = "worker"
	TypeStandalone NodeType = "standalone"
)

// ParseNodeType validates a type value from the node file.
func ParseNodeType(s string) (NodeType, bool) {
	switch t := NodeType(s); t {
	case TypeManager, TypeProxy, TypeWorker, TypeStandalone:
		return t, true
	default:
		return "", false
	}
}

// Node is one cluster member as declared in the node file.
//
// Type, Host, Addr and Count are always set on a node returned from Load.
// Attributes whose keys come from the schema but have no dedicated field are
// kept in Attrs.
type Node struct {
	Name  string            `json:"name" yaml:"name"`
	Type  NodeType          `json:"type" yaml:"type"`
	Host  string            `json:"host" yaml:"host"`
	Addr  string            `json:"addr" yaml:"addr"`
	Count int               `json:"count" yaml:"count"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

func newNode(name string) *Node {
	return &Node{Name: name, Attrs: make(map[string]string)}
}

// Get returns the value of any node attribute by key, including the fixed
// fields. Unknown keys yield "".
func (n *Node) Get(key string) string {
	switch key {
	case "name":
		return n.Name
	case "type":
		return string(n.Type)
	case "host":
		return n.Host
	case "addr":
		return n.Addr
	case "count":
		return strconv.Itoa(n.Count)
	default:
		return n.Attrs[key]
	}
}

func (n *Node) set(key, value string) {
	switch key {
	case "type":
		n.Type = NodeType(value)
	case "host":
		n.Host = value
	default:
		n.Attrs[key] = value
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("%s (%s #%d on %s)", n.Name, n.Type, n.Count, n.Host)
}
