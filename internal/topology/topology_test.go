package topology

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"clusterctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver map[string]string

func (r fakeResolver) Resolve(_ context.Context, host string) (string, error) {
	if addr, ok := r[host]; ok {
		return addr, nil
	}
	return "", errors.New("no such host")
}

type fakeLocal map[string]bool

func (l fakeLocal) IsLocal(n *Node) bool {
	return l[n.Host]
}

var testResolver = fakeResolver{
	"mgr.example.org": "10.0.0.1",
	"w1.example.org":  "10.0.0.2",
	"w2.example.org":  "10.0.0.3",
	"localhost":       "127.0.0.1",
}

func testParams() Params {
	return Params{
		Resolver: testResolver,
		Local:    fakeLocal{"mgr.example.org": true, "localhost": true},
	}
}

func writeNodes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nodes.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const clusterNodes = `
[manager]
type = manager
host = mgr.example.org

[proxy-1]
type = proxy
host = mgr.example.org

[worker-2]
type = worker
host = w2.example.org
interface = eth1

[worker-1]
type = worker
host = w1.example.org
interface = eth0
`

func TestLoad_Cluster(t *testing.T) {
	topo, err := Load(context.Background(), writeNodes(t, clusterNodes), testParams())
	require.NoError(t, err)
	assert.Equal(t, 4, topo.Len())

	workers := topo.Nodes(TagWorkers, true)
	require.Len(t, workers, 2)
	assert.Equal(t, "worker-1", workers[0].Name)
	assert.Equal(t, "worker-2", workers[1].Name)

	// Counts follow declaration order, not sort order.
	assert.Equal(t, 2, workers[0].Count)
	assert.Equal(t, 1, workers[1].Count)
	assert.Equal(t, "10.0.0.2", workers[0].Addr)
	assert.Equal(t, "eth0", workers[0].Get("interface"))

	mgr := topo.Manager()
	require.NotNil(t, mgr)
	assert.Equal(t, "manager", mgr.Name)
	assert.Equal(t, 1, mgr.Count)
	assert.Equal(t, "10.0.0.1", mgr.Addr)
}

func TestLoad_Missing(t *testing.T) {
	topo, err := Load(context.Background(), filepath.Join(t.TempDir(), "nodes.cfg"), testParams())
	require.NoError(t, err)
	assert.Equal(t, 0, topo.Len())
	assert.Nil(t, topo.Manager())
	assert.Empty(t, topo.Nodes("", true))
}

func TestLoad_Standalone(t *testing.T) {
	topo, err := Load(context.Background(), writeNodes(t, `
[monitor]
type = standalone
host = localhost
`), testParams())
	require.NoError(t, err)

	mgr := topo.Manager()
	require.NotNil(t, mgr)
	assert.Equal(t, "monitor", mgr.Name)
	assert.Equal(t, TypeStandalone, mgr.Type)
	assert.Equal(t, []*Node{mgr}, topo.Nodes("manager", true), "manager tag falls back to standalone")
}

func TestLoad_DefaultsAndKeyNormalization(t *testing.T) {
	schema := DefaultSchema()
	schema.Add("myplugin_enabled")

	p := testParams()
	p.Schema = schema

	topo, err := Load(context.Background(), writeNodes(t, `
[DEFAULT]
interface = eth9

[monitor]
Type = standalone
Host = localhost
MyPlugin.Enabled = yes
bogus = 1
`), p)
	require.NoError(t, err)

	n, ok := topo.Node("monitor")
	require.True(t, ok)
	assert.Equal(t, "eth9", n.Get("interface"), "DEFAULT values are inherited")
	assert.Equal(t, "yes", n.Get("myplugin_enabled"), "dotted keys are normalized")
	assert.Equal(t, "", n.Get("bogus"), "unknown keys are dropped")
	_, hasBogus := n.Attrs["bogus"]
	assert.False(t, hasBogus)
}

func TestLoad_FatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    config.ErrorKind
		section string
		message string
	}{
		{
			name: "duplicate manager",
			content: `
[m1]
type = manager
host = mgr.example.org
[m2]
type = manager
host = mgr.example.org
[p]
type = proxy
host = w1.example.org
`,
			kind:    config.KindTopology,
			section: "m2",
			message: "only one manager",
		},
		{
			name: "unknown type",
			content: `
[x]
type = logger
host = w1.example.org
`,
			kind:    config.KindTopology,
			section: "x",
			message: "unknown type 'logger'",
		},
		{
			name: "missing type",
			content: `
[x]
host = w1.example.org
`,
			kind:    config.KindTopology,
			section: "x",
			message: "no type given",
		},
		{
			name: "missing host",
			content: `
[w]
type = worker
`,
			kind:    config.KindHost,
			section: "w",
			message: "no host given",
		},
		{
			name: "unresolvable host",
			content: `
[w]
type = worker
host = nowhere.invalid
`,
			kind:    config.KindHost,
			section: "w",
			message: "unknown host 'nowhere.invalid'",
		},
		{
			name: "no manager",
			content: `
[p]
type = proxy
host = w1.example.org
[w]
type = worker
host = w2.example.org
`,
			kind:    config.KindTopology,
			message: "no manager defined",
		},
		{
			name: "no proxy",
			content: `
[m]
type = manager
host = mgr.example.org
`,
			kind:    config.KindTopology,
			message: "no proxy defined",
		},
		{
			name: "standalone with others",
			content: `
[a]
type = standalone
host = localhost
[b]
type = standalone
host = localhost
`,
			kind:    config.KindTopology,
			message: "more than one node",
		},
		{
			name: "manager not local",
			content: `
[m]
type = manager
host = w1.example.org
[p]
type = proxy
host = w1.example.org
`,
			kind:    config.KindTopology,
			section: "m",
			message: "must be run on manager node",
		},
		{
			name: "manager on loopback",
			content: `
[m]
type = manager
host = localhost
[p]
type = proxy
host = w1.example.org
`,
			kind:    config.KindTopology,
			section: "m",
			message: "cannot use localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeNodes(t, tt.content)

			topo, err := Load(context.Background(), path, testParams())
			require.Error(t, err)
			assert.Nil(t, topo, "no topology is returned on fatal errors")

			var ce *config.ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Equal(t, path, ce.FilePath)
			assert.Equal(t, tt.section, ce.Section)
			assert.Contains(t, ce.Message, tt.message)
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeNodes(t, "[broken\ntype = worker\n")

	_, err := Load(context.Background(), path, testParams())
	require.Error(t, err)
	assert.True(t, config.IsKind(err, config.KindParse))
}
