package topology

import "sort"

// Query tags understood by Nodes in addition to node names and types.
const (
	TagAll     = "all"
	TagCluster = "cluster"
	TagProxies = "proxies"
	TagWorkers = "workers"
)

// Nodes returns the nodes selected by tag, sorted by (type, name):
//
//   - "all" or "cluster": every node if expandAll is set, otherwise none
//   - "proxies", "workers": every proxy or worker
//   - a node type or a static option name: nodes of that type
//   - a node name: that node
//   - "": every node
//
// "manager" falls back to the standalone node when there is no manager.
func (t *Topology) Nodes(tag string, expandAll bool) []*Node {
	var typ NodeType
	query := tag

	switch {
	case tag == TagAll || tag == TagCluster:
		if !expandAll {
			return nil
		}
		query = ""
	case tag == TagProxies:
		typ = TypeProxy
	case tag == TagWorkers:
		typ = TypeWorker
	case t.isTypeTag(tag):
		typ = NodeType(tag)
	}

	var nodes []*Node
	for _, n := range t.nodes {
		if typ != "" {
			if n.Type == typ {
				nodes = append(nodes, n)
			}
		} else if query == "" || n.Name == query {
			nodes = append(nodes, n)
		}
	}

	sortNodes(nodes)

	if len(nodes) == 0 && tag == string(TypeManager) {
		return t.Nodes(string(TypeStandalone), expandAll)
	}
	return nodes
}

func (t *Topology) isTypeTag(tag string) bool {
	if tag == "" {
		return false
	}
	if _, ok := ParseNodeType(tag); ok {
		return true
	}
	return t.options != nil && t.options.HasStatic(tag)
}

// Node returns the node with the given name.
func (t *Topology) Node(name string) (*Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Manager returns the manager node, or the standalone node when the
// cluster is a standalone setup, or nil for an empty topology.
func (t *Topology) Manager() *Node {
	for _, typ := range []NodeType{TypeManager, TypeStandalone} {
		if nodes := t.ofType(typ); len(nodes) > 0 {
			return nodes[0]
		}
	}
	return nil
}

// Hosts is like Nodes(tag, true) but returns at most one node per host.
// The first node in sort order wins.
func (t *Topology) Hosts(tag string) []*Node {
	seen := make(map[string]struct{})
	var hosts []*Node
	for _, n := range t.Nodes(tag, true) {
		if _, ok := seen[n.Host]; ok {
			continue
		}
		seen[n.Host] = struct{}{}
		hosts = append(hosts, n)
	}
	return hosts
}

func (t *Topology) ofType(typ NodeType) []*Node {
	var nodes []*Node
	for _, n := range t.nodes {
		if n.Type == typ {
			nodes = append(nodes, n)
		}
	}
	sortNodes(nodes)
	return nodes
}

func sortNodes(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Type != nodes[j].Type {
			return nodes[i].Type < nodes[j].Type
		}
		return nodes[i].Name < nodes[j].Name
	})
}
