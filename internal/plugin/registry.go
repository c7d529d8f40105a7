// Package plugin lets extensions contribute node attributes and analysis
// types. Plugins are registered in-process; discovering and loading them is
// left to the caller.
package plugin

import (
	"fmt"
	"regexp"

	"clusterctl/internal/analysis"
	"clusterctl/internal/topology"
	"clusterctl/pkg/logging"
)

var prefixPattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Plugin is the view of an extension the configuration core needs.
type Plugin interface {
	// Prefix namespaces the node keys contributed by the plugin.
	Prefix() string
	// NodeKeys are attribute keys, without prefix, the plugin accepts in
	// node sections.
	NodeKeys() []string
	// Analyses are analysis types the plugin provides.
	Analyses() []analysis.Type
}

// Registry holds the registered plugins in registration order.
type Registry struct {
	plugins []Plugin
	byName  map[string]Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Plugin)}
}

// Register adds p. Prefixes must be lowercase alphanumerics and unique.
func (r *Registry) Register(p Plugin) error {
	prefix := p.Prefix()
	if !prefixPattern.MatchString(prefix) {
		return fmt.Errorf("plugin prefix '%s' must be lowercase alphanumeric", prefix)
	}
	if _, exists := r.byName[prefix]; exists {
		return fmt.Errorf("plugin prefix '%s' already registered", prefix)
	}
	r.plugins = append(r.plugins, p)
	r.byName[prefix] = p
	logging.Debug("Plugin", "registered plugin %s", prefix)
	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// AddNodeKeys extends schema with every plugin's node keys as
// "<prefix>_<key>". It must run before the node file is parsed.
func (r *Registry) AddNodeKeys(schema *topology.Schema) {
	for _, p := range r.plugins {
		for _, key := range p.NodeKeys() {
			schema.Add(fmt.Sprintf("%s_%s", p.Prefix(), key))
		}
	}
}

// AddAnalyses adds every plugin's analysis types to reg. It must run after
// the analysis definitions file has been loaded.
func (r *Registry) AddAnalyses(reg *analysis.Registry) {
	for _, p := range r.plugins {
		for _, a := range p.Analyses() {
			reg.AddAnalysis(a.Tag, a.Mechanism, a.Description)
		}
	}
}

// Static is a Plugin defined entirely by data.
type Static struct {
	Name  string
	Keys  []string
	Types []analysis.Type
}

func (s Static) Prefix() string            { return s.Name }
func (s Static) NodeKeys() []string        { return s.Keys }
func (s Static) Analyses() []analysis.Type { return s.Types }
