package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"xwing-inventory/core/reconcile"
	"xwing-inventory/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "xwing", cfg.Storage.Bucket)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "local", cfg.Sources.Backend)
	assert.Equal(t, "expansions.json", cfg.Sources.Expansions)
	assert.Equal(t, "xwing-data2", cfg.Sources.XWingData)
	assert.Equal(t, 5*time.Minute, cfg.Reconcile.CacheTTL())
	assert.Equal(t, "exports", cfg.Export.UploadPrefix)

	policy, err := cfg.Reconcile.Policy()
	require.NoError(t, err)
	assert.Equal(t, reconcile.KeepFirst, policy)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SOURCES_BACKEND", "bucket")
	t.Setenv("RECONCILE_DUPLICATE_POLICY", "sum")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "bucket", cfg.Sources.Backend)
	assert.Equal(t, "9090", cfg.Server.Port)

	policy, err := cfg.Reconcile.Policy()
	require.NoError(t, err)
	assert.Equal(t, reconcile.Sum, policy)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPORT_XLSX_PATH=out.xlsx\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("EXPORT_XLSX_PATH") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "out.xlsx", cfg.Export.XLSXPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Sources:   source.Config{Backend: source.BackendLocal},
		Reconcile: ReconcileConfig{DuplicatePolicy: "first"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Backend", func(c *Config) { c.Sources.Backend = "ftp" }, true},
		{"Policy", func(c *Config) { c.Reconcile.DuplicatePolicy = "max" }, true},
		{"NegativeTTL", func(c *Config) { c.Reconcile.CacheTTLSeconds = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
