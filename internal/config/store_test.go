package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetHas(t *testing.T) {
	s := NewStore()
	s.Set("SpoolDir", "/var/spool")
	s.dynamic["sensorversion"] = "2.1"
	s.dynamic["spooldir"] = "/shadowed"

	assert.Equal(t, "/var/spool", s.Get("spooldir"))
	assert.Equal(t, "/var/spool", s.Get("SPOOLDIR"), "lookups are case-insensitive")
	assert.Equal(t, "2.1", s.Get("sensorversion"))
	assert.Equal(t, "", s.Get("unknown"))

	assert.True(t, s.Has("spooldir"))
	assert.True(t, s.Has("sensorversion"))
	assert.False(t, s.Has("unknown"))
	assert.False(t, s.HasStatic("sensorversion"))
}

func TestStore_LoadStatic(t *testing.T) {
	path := writeFile(t, t.TempDir(), "clusterctl.cfg", "LogDir = /var/log/monitor\n")

	s := NewStore()
	require.NoError(t, s.LoadStatic(path))
	assert.Equal(t, "/var/log/monitor", s.Get("logdir"))
}

func TestStore_LoadStatic_Missing(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.LoadStatic(filepath.Join(t.TempDir(), "nope.cfg")))
	assert.Empty(t, s.Options(true))
}

func TestStore_SetDefault(t *testing.T) {
	s := NewStore()
	s.Set("basedir", "/opt/monitor")
	s.Set("bindir", "/usr/local/bin")

	require.NoError(t, s.SetDefault("bindir", "${basedir}/bin"))
	require.NoError(t, s.SetDefault("SpoolDir", "${basedir}/spool"))

	assert.Equal(t, "/usr/local/bin", s.Get("bindir"), "existing values are kept")
	assert.Equal(t, "/opt/monitor/spool", s.Get("spooldir"), "defaults are expanded")
}

func TestStore_SetDefault_IgnoresDynamicTier(t *testing.T) {
	s := NewStore()
	s.dynamic["mailto"] = "state@example.org"

	require.NoError(t, s.SetDefault("mailto", "ops@example.org"))
	assert.Equal(t, "ops@example.org", s.static["mailto"])
}

func TestStore_Substitute(t *testing.T) {
	s := NewStore()
	s.Set("basedir", "/opt/monitor")
	s.Set("spooldir", "${basedir}/spool")
	s.dynamic["sensorversion"] = "2.1"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "no patterns here", "no patterns here"},
		{"simple", "${basedir}/bin", "/opt/monitor/bin"},
		{"case-insensitive name", "${BaseDir}", "/opt/monitor"},
		{"nested", "${spooldir}/tmp", "/opt/monitor/spool/tmp"},
		{"dynamic tier", "v${sensorversion}", "v2.1"},
		{"missing with default", "${missing:foo}", "foo"},
		{"missing without default", "${missing}", ""},
		{"known ignores default", "${basedir:/other}", "/opt/monitor"},
		{"multiple", "${basedir}:${sensorversion}", "/opt/monitor:2.1"},
		{"empty default", "[${missing:}]", "[]"},
		{"not a pattern", "$basedir and ${}", "$basedir and ${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Substitute(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			again, err := s.Substitute(result)
			require.NoError(t, err)
			assert.Equal(t, result, again, "substitution must be idempotent on resolved strings")
		})
	}
}

func TestStore_Substitute_Cycle(t *testing.T) {
	s := NewStore()
	s.Set("a", "${b}")
	s.Set("b", "x${a}")

	_, err := s.Substitute("${a}")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSubstitution))

	s.Set("self", "${self}")
	_, err = s.Substitute("${self}")
	assert.True(t, IsKind(err, KindSubstitution))
}

func TestStore_Options(t *testing.T) {
	s := NewStore()
	s.Set("zeta", "1")
	s.Set("alpha", "2")
	s.dynamic["state"] = "3"

	static := s.Options(false)
	require.Len(t, static, 2)
	assert.Equal(t, Option{Key: "alpha", Value: "2", Tier: TierStatic}, static[0])
	assert.Equal(t, "zeta", static[1].Key)

	all := s.Options(true)
	require.Len(t, all, 3)
	assert.Equal(t, Option{Key: "state", Value: "3", Tier: TierDynamic}, all[2])
}
