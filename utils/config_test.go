package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, c.ListenPort)
	assert.Equal(t, "localhost", c.RedisHost)
	assert.Equal(t, "6379", c.RedisPort)
	assert.Equal(t, "./premium_tables.xlsx", c.PremiumTablePath)
	assert.Equal(t, 0, c.TableRefreshMinutes)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LISTEN_PORT", "8080")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("PREMIUM_TABLE_PATH", "/srv/tables/premium_tables.xlsx")

	c, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, c.ListenPort)
	assert.Equal(t, "cache.internal", c.RedisHost)
	assert.Equal(t, "/srv/tables/premium_tables.xlsx", c.PremiumTablePath)
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "LISTEN_PORT=9000\nREDIS_DB=3\nTABLE_REFRESH_MINUTES=15\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	c, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, c.ListenPort)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, 15, c.TableRefreshMinutes)
}

func TestRedact(t *testing.T) {
	c := &Config{RedisPassword: "hunter2"}

	assert.Equal(t, "****", c.Redact().RedisPassword)
	assert.Equal(t, "hunter2", c.RedisPassword)
}
