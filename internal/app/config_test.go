package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeTempConfig(t, "server:\n  http-port: \":8080\"\n")

	c, realpath, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, path, realpath)

	// YAML 覆盖的字段
	assert.Equal(t, ":8080", c.Server.HttpPort)

	// 未出现的字段取默认值
	assert.Equal(t, "release", c.Server.RunMode)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.Equal(t, DefaultAccessToken, c.Security.ApiAccessToken)
	assert.True(t, c.IsDefaultAccessToken())
	assert.Equal(t, "7d", c.App.SoftDeleteRetentionTime)
	assert.Equal(t, 7*24*time.Hour, c.GetSoftDeleteRetention())
	assert.Equal(t, 60*time.Second, c.GetContextTimeout())
}

func TestLoadConfig_EnvOverridesToken(t *testing.T) {
	path := writeTempConfig(t, "security:\n  api-access-token: \"from-yaml\"\n")
	t.Setenv(AccessTokenEnv, "from-env")

	c, _, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "from-env", c.Security.ApiAccessToken)
	assert.False(t, c.IsDefaultAccessToken())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigSave(t *testing.T) {
	path := writeTempConfig(t, "app:\n  soft-delete-retention-time: \"24h\"\n")

	c, _, err := LoadConfig(path)
	assert.NoError(t, err)

	c.Server.HttpPort = ":9999"
	assert.NoError(t, c.Save())

	reloaded, _, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ":9999", reloaded.Server.HttpPort)
	assert.Equal(t, "24h", reloaded.App.SoftDeleteRetentionTime)
}
