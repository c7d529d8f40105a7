package config

import (
	"regexp"
	"sort"
	"strings"

	"clusterctl/pkg/logging"
)

// MaxSubstitutions bounds the number of ${...} replacements performed on a
// single string. Reaching it means the value references itself, directly or
// through a chain of options.
const MaxSubstitutions = 100

var substitutionPattern = regexp.MustCompile(`\$\{([A-Za-z][A-Za-z0-9_-]*)(?::([^}]*))?\}`)

// Tier identifies where an option was found.
type Tier string

const (
	TierStatic  Tier = "static"
	TierDynamic Tier = "dynamic"
)

// Option is a single key/value pair together with its tier.
type Option struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Tier  Tier   `json:"tier" yaml:"tier"`
}

// Store holds the two option tiers: static settings from the base
// configuration file and dynamic variables from the state file. Lookups
// consult the static tier first.
type Store struct {
	static  map[string]string
	dynamic map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		static:  make(map[string]string),
		dynamic: make(map[string]string),
	}
}

// LoadStatic reads path into the static tier. Existing static entries with
// the same keys are overwritten.
func (s *Store) LoadStatic(path string) error {
	values, err := ReadKeyValueFile(path)
	if err != nil {
		return err
	}
	for k, v := range values {
		s.static[k] = v
	}
	logging.Info("Config", "loaded %d options from %s", len(values), path)
	return nil
}

// Get returns the value of key from the static tier, then the dynamic tier,
// or "" when neither defines it.
func (s *Store) Get(key string) string {
	key = strings.ToLower(key)
	if v, ok := s.static[key]; ok {
		return v
	}
	if v, ok := s.dynamic[key]; ok {
		return v
	}
	return ""
}

// Has reports whether key is defined in either tier.
func (s *Store) Has(key string) bool {
	key = strings.ToLower(key)
	if _, ok := s.static[key]; ok {
		return true
	}
	_, ok := s.dynamic[key]
	return ok
}

// HasStatic reports whether key is defined in the static tier.
func (s *Store) HasStatic(key string) bool {
	_, ok := s.static[strings.ToLower(key)]
	return ok
}

// Set writes key into the static tier unconditionally.
func (s *Store) Set(key, value string) {
	s.static[strings.ToLower(key)] = value
}

// SetDefault writes key into the static tier unless it is already present
// there. rawValue is expanded against the current contents first.
func (s *Store) SetDefault(key, rawValue string) error {
	key = strings.ToLower(key)
	if _, ok := s.static[key]; ok {
		return nil
	}
	value, err := s.Substitute(rawValue)
	if err != nil {
		return err
	}
	s.static[key] = value
	return nil
}

// Substitute replaces every ${name} and ${name:default} in text. Names are
// matched case-insensitively against both tiers; unknown names expand to the
// default text, or "" without one. The replaced text is rescanned, so values
// may themselves contain references.
func (s *Store) Substitute(text string) (string, error) {
	input := text
	for i := 0; ; i++ {
		m := substitutionPattern.FindStringSubmatchIndex(text)
		if m == nil {
			return text, nil
		}
		if i >= MaxSubstitutions {
			return "", NewError(KindSubstitution, "", "too many substitutions expanding '%s'", input).
				WithDetails("option references itself")
		}

		name := strings.ToLower(text[m[2]:m[3]])
		var value string
		if s.Has(name) {
			value = s.Get(name)
		} else if m[4] >= 0 {
			value = text[m[4]:m[5]]
			logging.Debug("Config", "option '%s' not set, using default '%s'", name, value)
		} else {
			logging.Warn("Config", "unknown option '%s' in substitution, using empty string", name)
		}

		text = text[:m[0]] + value + text[m[1]:]
	}
}

// Options lists the static tier sorted by key, followed by the dynamic tier
// when dynamic is true.
func (s *Store) Options(dynamic bool) []Option {
	opts := sortedOptions(s.static, TierStatic)
	if dynamic {
		opts = append(opts, sortedOptions(s.dynamic, TierDynamic)...)
	}
	return opts
}

func sortedOptions(m map[string]string, tier Tier) []Option {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]Option, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, Option{Key: k, Value: m[k], Tier: tier})
	}
	return opts
}
