package topology

import (
	"context"
	"errors"
	"os"
	"strings"

	"clusterctl/internal/config"
	"clusterctl/pkg/logging"

	"gopkg.in/ini.v1"
)

// OptionLookup answers whether a name is a static configuration option.
// Such names are accepted as node type filters by Nodes.
type OptionLookup interface {
	HasStatic(key string) bool
}

// Params carries the collaborators Load needs.
type Params struct {
	// Schema is the permitted attribute whitelist. Defaults to DefaultSchema.
	Schema *Schema
	// Resolver maps hosts to addresses. Defaults to NetResolver.
	Resolver Resolver
	// Local decides whether the manager runs on this machine. Required
	// whenever the node file declares a manager.
	Local LocalChecker
	// Options is consulted for option-name tags in Nodes. May be nil.
	Options OptionLookup
}

// Topology is the validated set of nodes declared in the node file. It is
// read-only once Load returns.
type Topology struct {
	path    string
	nodes   []*Node
	byName  map[string]*Node
	options OptionLookup
}

// kinds tracks which node types have been declared.
type kinds struct {
	manager, proxy, worker, standalone bool
}

// Load parses and validates the node file at path.
//
// Sections are processed in file order. Every fatal condition aborts the
// load and is returned as a *config.ConfigurationError naming the file and,
// where it applies, the section; no partially built topology is returned.
// A missing file is a warning and yields an empty topology.
func Load(ctx context.Context, path string, p Params) (*Topology, error) {
	if p.Schema == nil {
		p.Schema = DefaultSchema()
	}
	if p.Resolver == nil {
		p.Resolver = NetResolver{}
	}

	t := &Topology{
		path:    path,
		byName:  make(map[string]*Node),
		options: p.Options,
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.Warn("Topology", "cannot read '%s' (this is ok on first run)", path)
		return t, nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, config.NewError(config.KindIO, path, "cannot read node file").Wrap(err)
		}
		return nil, config.NewError(config.KindParse, path, "cannot parse node file").Wrap(err)
	}

	defaults := file.Section(ini.DefaultSection).Keys()

	var seen kinds
	counts := make(map[NodeType]int)

	for _, sec := range file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		node := newNode(sec.Name())
		for _, kv := range sectionItems(sec, defaults) {
			key := strings.ReplaceAll(kv.key, ".", "_")

			if !p.Schema.Has(key) {
				logging.Warn("Topology", "%s: unknown key '%s' in section '%s'", path, key, sec.Name())
				continue
			}

			if key == "type" {
				if err := seen.record(path, sec.Name(), kv.value); err != nil {
					return nil, err
				}
			}

			node.set(key, kv.value)
		}

		if node.Type == "" {
			return nil, config.NewError(config.KindTopology, path, "no type given").InSection(sec.Name())
		}

		if node.Host == "" {
			return nil, config.NewError(config.KindHost, path, "no host given").InSection(sec.Name())
		}
		addr, err := p.Resolver.Resolve(ctx, node.Host)
		if err != nil {
			return nil, config.NewError(config.KindHost, path, "unknown host '%s'", node.Host).
				InSection(sec.Name()).WithDetails(err.Error()).Wrap(err)
		}
		node.Addr = addr

		// Each node gets a number unique across its type.
		counts[node.Type]++
		node.Count = counts[node.Type]

		t.nodes = append(t.nodes, node)
		t.byName[node.Name] = node
		logging.Debug("Topology", "node %s", node)
	}

	if err := t.validate(seen, p.Local); err != nil {
		return nil, err
	}

	logging.Info("Topology", "loaded %d nodes from %s", len(t.nodes), path)
	return t, nil
}

type item struct {
	key, value string
}

// sectionItems returns the section's own keys in file order followed by
// DEFAULT keys the section does not override.
func sectionItems(sec *ini.Section, defaults []*ini.Key) []item {
	items := make([]item, 0, len(sec.Keys())+len(defaults))
	own := make(map[string]struct{})
	for _, k := range sec.Keys() {
		items = append(items, item{key: k.Name(), value: k.Value()})
		own[k.Name()] = struct{}{}
	}
	for _, k := range defaults {
		if _, ok := own[k.Name()]; !ok {
			items = append(items, item{key: k.Name(), value: k.Value()})
		}
	}
	return items
}

func (k *kinds) record(path, section, value string) error {
	typ, ok := ParseNodeType(value)
	if !ok {
		return config.NewError(config.KindTopology, path, "unknown type '%s'", value).InSection(section)
	}

	switch typ {
	case TypeManager:
		if k.manager {
			return config.NewError(config.KindTopology, path, "only one manager can be defined").InSection(section)
		}
		k.manager = true
	case TypeProxy:
		k.proxy = true
	case TypeWorker:
		k.worker = true
	case TypeStandalone:
		k.standalone = true
	}
	return nil
}

// validate enforces the cluster-shape invariants once all sections are read.
func (t *Topology) validate(seen kinds, local LocalChecker) error {
	if len(t.nodes) > 0 {
		if !seen.standalone {
			if !seen.manager {
				return config.NewError(config.KindTopology, t.path, "no manager defined")
			}
			if !seen.proxy {
				return config.NewError(config.KindTopology, t.path, "no proxy defined")
			}
		} else if len(t.nodes) > 1 {
			return config.NewError(config.KindTopology, t.path, "more than one node defined in stand-alone setup")
		}
	}

	for _, n := range t.nodes {
		if n.Type != TypeManager {
			continue
		}
		if local == nil || !local.IsLocal(n) {
			return config.NewError(config.KindTopology, t.path, "script must be run on manager node").
				InSection(n.Name).WithDetails("manager host is " + n.Host)
		}
		// Only a standalone node may live on loopback.
		if isLoopback(n.Addr) {
			return config.NewError(config.KindTopology, t.path,
				"cannot use localhost/%s for manager host in nodes configuration", n.Addr).InSection(n.Name)
		}
	}
	return nil
}

// Path returns the node file the topology was loaded from.
func (t *Topology) Path() string {
	return t.path
}

// Len returns the number of nodes.
func (t *Topology) Len() int {
	return len(t.nodes)
}
