package analysis

import (
	"bufio"
	"errors"
	"os"
	"sort"
	"strings"

	"clusterctl/internal/config"
	"clusterctl/pkg/logging"
)

// StateVars is the dynamic state the registry keeps enable flags in.
type StateVars interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Type is one analysis definition.
type Type struct {
	Tag         string `json:"type" yaml:"type"`
	Mechanism   string `json:"mechanism" yaml:"mechanism"`
	Description string `json:"description" yaml:"description"`
}

// Status is a Type together with its current enable flag.
type Status struct {
	Type    `yaml:",inline"`
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Registry holds the known analysis types. Whether a type is enabled is not
// stored here but in the state variable "analysis-<type>".
type Registry struct {
	types map[string]Type
	state StateVars
}

// NewRegistry creates an empty registry backed by state.
func NewRegistry(state StateVars) *Registry {
	return &Registry{
		types: make(map[string]Type),
		state: state,
	}
}

// Load reads analysis definitions from path. Each line holds a type, a
// mechanism and an optional free-text description separated by whitespace.
// Lines with fewer than two fields are skipped with a warning.
func (r *Registry) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.NewError(config.KindIO, path, "analysis configuration does not exist")
		}
		return config.NewError(config.KindIO, path, "cannot read analysis configuration").Wrap(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			logging.Warn("Analysis", "cannot parse line %d in %s", lineNumber, path)
			continue
		}

		r.AddAnalysis(fields[0], fields[1], strings.Join(fields[2:], " "))
	}
	if err := scanner.Err(); err != nil {
		return config.NewError(config.KindIO, path, "cannot read analysis configuration").Wrap(err)
	}

	logging.Debug("Analysis", "loaded %d analysis types from %s", len(r.types), path)
	return nil
}

// AddAnalysis inserts or replaces a definition. Plugins use it to extend
// the table after Load.
func (r *Registry) AddAnalysis(tag, mechanism, description string) {
	r.types[tag] = Type{Tag: tag, Mechanism: mechanism, Description: description}
}

// IsValid reports whether tag is a known analysis type.
func (r *Registry) IsValid(tag string) bool {
	_, ok := r.types[tag]
	return ok
}

// IsEnabled reports whether tag is enabled. Types are enabled unless their
// state variable holds exactly "0"; any other stored value counts as enabled.
func (r *Registry) IsEnabled(tag string) bool {
	v, ok := r.state.Get(stateKey(tag))
	return !ok || v != "0"
}

// Toggle enables or disables tag and returns whether it was enabled before.
// Enabling removes the state variable so the type reverts to the default.
func (r *Registry) Toggle(tag string, enable bool) bool {
	prev := r.IsEnabled(tag)
	if enable {
		r.state.Delete(stateKey(tag))
	} else {
		r.state.Set(stateKey(tag), "0")
	}
	logging.Debug("Analysis", "analysis %s enabled=%t (was %t)", tag, enable, prev)
	return prev
}

// All returns every known type with its status, sorted by tag.
func (r *Registry) All() []Status {
	tags := make([]string, 0, len(r.types))
	for tag := range r.types {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	result := make([]Status, 0, len(tags))
	for _, tag := range tags {
		result = append(result, Status{Type: r.types[tag], Enabled: r.IsEnabled(tag)})
	}
	return result
}

func stateKey(tag string) string {
	return "analysis-" + tag
}
