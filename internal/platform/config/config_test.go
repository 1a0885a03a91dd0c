package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "mode: release\ndatabase:\n  driver: memory\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeRelease, cfg.Mode)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "public/pdfs", cfg.Storage.PDFDir)
	assert.Equal(t, "Asia/Kolkata", cfg.Render.Timezone)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "8088")
	t.Setenv(EnvAllowedOrigins, "https://a.example, https://b.example ,")
	t.Setenv(EnvDBPassword, "from-env")
	path := writeConfig(t, "mode: dev\ndatabase:\n  driver: mysql\n  mysql:\n    host: db\n    dbname: epass\n    password: from-file\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "from-env", cfg.Database.MySQL.Password)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad mode":          "mode: staging\n",
		"unknown driver":    "database:\n  driver: sqlite\n",
		"mongo without uri": "database:\n  driver: mongo\n",
		"bad timezone":      "database:\n  driver: memory\nrender:\n  timezone: Mars/Olympus\n",
		"half tls":          "database:\n  driver: memory\nserver:\n  tls_cert: a.crt\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(EnvMongoURI, "")
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadPortEnv(t *testing.T) {
	t.Setenv(EnvPort, "eighty")
	_, err := Load(writeConfig(t, "database:\n  driver: memory\n"))
	assert.Error(t, err)
}
