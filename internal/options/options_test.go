package options

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var reference = regexp.MustCompile(`\$\{([A-Za-z]+)`)

func TestDefaults_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, opt := range Defaults() {
		name := strings.ToLower(opt.Name)
		assert.False(t, seen[name], "duplicate option %s", opt.Name)
		seen[name] = true
		assert.NotEmpty(t, opt.Description, "option %s needs a description", opt.Name)
	}
}

func TestDefaults_ReferencesResolveInOrder(t *testing.T) {
	// Set by the bootstrap before any descriptor is applied.
	defined := map[string]bool{"basedir": true, "version": true}

	for _, opt := range Defaults() {
		if opt.DontInit {
			assert.Empty(t, opt.Default, "option %s is derived and should not carry a default", opt.Name)
			continue
		}
		for _, m := range reference.FindAllStringSubmatch(opt.Default, -1) {
			assert.True(t, defined[strings.ToLower(m[1])], "option %s references %s before it is defined", opt.Name, m[1])
		}
		defined[strings.ToLower(opt.Name)] = true
	}
}
