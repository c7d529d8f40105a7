package topology

// DefaultKeys are the node attributes every deployment understands.
var DefaultKeys = []string{"type", "host", "interface", "aux_scripts", "basedir", "ether"}

// Schema is the whitelist of attribute keys accepted in node sections.
// Plugins extend it before the node file is parsed.
type Schema struct {
	keys  []string
	index map[string]struct{}
}

// NewSchema creates a schema holding the given keys.
func NewSchema(keys ...string) *Schema {
	s := &Schema{index: make(map[string]struct{})}
	s.Add(keys...)
	return s
}

// DefaultSchema creates a schema holding DefaultKeys.
func DefaultSchema() *Schema {
	return NewSchema(DefaultKeys...)
}

// Add appends keys to the schema, ignoring duplicates.
func (s *Schema) Add(keys ...string) {
	for _, k := range keys {
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = struct{}{}
		s.keys = append(s.keys, k)
	}
}

// Has reports whether key is permitted.
func (s *Schema) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Keys returns the permitted keys in the order they were added.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}
