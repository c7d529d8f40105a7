package config

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"clusterctl/pkg/logging"
)

// StateFileHeader is written at the top of every saved state file.
const StateFileHeader = "# Automatically generated. Do not edit."

// State manages the dynamic tier of a Store: runtime variables that are
// persisted to the state file and survive restarts.
type State struct {
	store *Store
	path  string
}

// NewState binds the dynamic tier of store to the state file at path.
func NewState(store *Store, path string) *State {
	return &State{store: store, path: path}
}

// Path returns the state file location.
func (st *State) Path() string {
	return st.path
}

// Load replaces the dynamic tier with the contents of the state file.
// A missing file leaves the tier empty.
func (st *State) Load() error {
	values, err := ReadKeyValueFile(st.path)
	if err != nil {
		return err
	}
	st.store.dynamic = values
	logging.Debug("State", "loaded %d state variables from %s", len(values), st.path)
	return nil
}

// Save writes the dynamic tier to the state file. Values are expanded
// before they are written, so the file never contains ${...} templates.
// A name or value containing '=' or a line break is rejected before the
// file is touched.
func (st *State) Save() error {
	keys := st.Keys()

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		value, err := st.store.Substitute(st.store.dynamic[k])
		if err != nil {
			return err
		}
		if err := st.checkEntry(k, value); err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("%s = %s", k, value))
	}

	f, err := os.Create(st.path)
	if err != nil {
		return NewError(KindIO, st.path, "can't write state file").Wrap(err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n\n", StateFileHeader)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return NewError(KindIO, st.path, "can't write state file").Wrap(err)
	}
	if err := f.Close(); err != nil {
		return NewError(KindIO, st.path, "can't write state file").Wrap(err)
	}

	logging.Debug("State", "saved %d state variables to %s", len(keys), st.path)
	return nil
}

// checkEntry rejects pairs that ReadKeyValueFile could not read back.
func (st *State) checkEntry(key, value string) error {
	if strings.ContainsAny(key, "=\r\n") {
		return NewError(KindParse, st.path, "invalid state variable name '%s'", key).
			WithDetails("names must not contain '=' or line breaks")
	}
	if strings.ContainsAny(value, "=\r\n") {
		return NewError(KindParse, st.path, "invalid value for state variable '%s'", key).
			WithDetails("values must not contain '=' or line breaks")
	}
	return nil
}

// Get returns a state variable and whether it is set.
func (st *State) Get(key string) (string, bool) {
	v, ok := st.store.dynamic[strings.ToLower(key)]
	return v, ok
}

// Has reports whether a state variable is set.
func (st *State) Has(key string) bool {
	_, ok := st.Get(key)
	return ok
}

// Set assigns a state variable.
func (st *State) Set(key, value string) {
	st.store.dynamic[strings.ToLower(key)] = value
}

// Delete removes a state variable. Deleting an unset variable is a no-op.
func (st *State) Delete(key string) {
	delete(st.store.dynamic, strings.ToLower(key))
}

// Keys returns the names of all state variables in sorted order.
func (st *State) Keys() []string {
	keys := make([]string, 0, len(st.store.dynamic))
	for k := range st.store.dynamic {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
