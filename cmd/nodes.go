package cmd

import (
	"fmt"

	"clusterctl/internal/formatting"
	"clusterctl/internal/topology"

	"github.com/spf13/cobra"
)

const tagHelp = `TAG selects nodes: "all" or "cluster" for every node, "proxies" or
"workers", a node type such as "manager", or a node name. Without TAG
every node is listed.`

func newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes [TAG]",
		Short: "List cluster nodes",
		Long:  "List the nodes of the cluster, sorted by type and name.\n\n" + tagHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, f, err := queryNodes(cmd, args, (*topology.Topology).Nodes)
			if err != nil {
				return err
			}
			return f.FormatNodes(nodes)
		},
	}
}

func newHostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hosts [TAG]",
		Short: "List cluster hosts",
		Long:  "List the hosts of the cluster with one node per host.\n\n" + tagHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hosts := func(t *topology.Topology, tag string, _ bool) []*topology.Node {
				return t.Hosts(tag)
			}
			nodes, f, err := queryNodes(cmd, args, hosts)
			if err != nil {
				return err
			}
			return f.FormatHosts(nodes)
		},
	}
}

type nodeQuery func(t *topology.Topology, tag string, expandAll bool) []*topology.Node

func queryNodes(cmd *cobra.Command, args []string, query nodeQuery) ([]*topology.Node, formatting.Formatter, error) {
	a, err := loadApplication(cmd)
	if err != nil {
		return nil, nil, err
	}
	f, err := newFormatter(cmd)
	if err != nil {
		return nil, nil, err
	}

	tag := ""
	if len(args) > 0 {
		tag = args[0]
	}
	nodes := query(a.Topology(), tag, true)
	if tag != "" && len(nodes) == 0 {
		return nil, nil, fmt.Errorf("unknown node or tag '%s'", tag)
	}
	return nodes, f, nil
}
