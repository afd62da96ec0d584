package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Golden(t *testing.T) {
	db := newTestDB(t, alice, bob)

	out, err := execute(t, nil, "stats", "--db", db)
	require.NoError(t, err)
	assertGolden(t, "stats", out)
}

func TestStats_JSON(t *testing.T) {
	db := newTestDB(t, alice)

	out, err := execute(t, nil, "stats", "--db", db, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   statsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.Contacts)
	assert.Equal(t, uint64(1), resp.Data.Cache.ListMisses)
	assert.Equal(t, uint64(1), resp.Data.Cache.Refreshes)
}

func TestStats_Prometheus(t *testing.T) {
	db := newTestDB(t, alice)

	out, err := execute(t, nil, "stats", "--db", db, "--prometheus")
	require.NoError(t, err)
	assert.Contains(t, out, "contacts_cache_refreshes_total 1")
	assert.Contains(t, out, `contacts_cache_misses_total{op="list"} 1`)
}

func TestConfigFileSelectsDatabase(t *testing.T) {
	db := newTestDB(t, alice)
	cfgPath := filepath.Join(t.TempDir(), "contacts.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[database]\npath = \""+filepath.ToSlash(db)+"\"\n"), 0644))

	out, err := execute(t, nil, "stats", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"contacts":1`)
}

func TestConfigFileUnknownKey(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "contacts.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[database]\npaht = \"x.db\"\n"), 0644))

	_, err := execute(t, nil, "list", "--config", cfgPath, "--db", newTestDB(t))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown keys")
}
