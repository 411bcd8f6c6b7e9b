package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/ir"
)

// isolate runs the test from an empty directory with an empty HOME so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ir.FormatV3, cfg.Version())
	assert.Equal(t, filepath.Join(".morphir", "ir.db"), cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 512, cfg.Decode.MaxDepth)
	assert.Empty(t, cfg.File)
}

func TestLoad_ConfigFileInWorkingDirectory(t *testing.T) {
	dir := isolate(t)

	content := `
format_version: 2
store:
  path: registry.db
log:
  level: debug
  format: json
output:
  format: yaml
decode:
  max_depth: 64
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "morphir-ir.yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ir.FormatV2, cfg.Version())
	assert.Equal(t, "registry.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 64, cfg.Decode.MaxDepth)
	assert.Equal(t, "morphir-ir.yaml", filepath.Base(cfg.File))
}

func TestLoad_HomeConfig(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".config", "morphir-ir")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "morphir-ir.yaml"), []byte("output:\n  format: json\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: /tmp/custom.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.Store.Path)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "morphir-ir.yaml"), []byte("log:\n  level: warn\n"), 0o644))

	t.Setenv("MORPHIR_IR_LOG_LEVEL", "error")
	t.Setenv("MORPHIR_IR_STORE_PATH", "env.db")
	t.Setenv("MORPHIR_IR_FORMAT_VERSION", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "env.db", cfg.Store.Path)
	assert.Equal(t, ir.FormatV2, cfg.Version())
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "morphir-ir.yaml"), []byte("log: [unclosed\n"), 0o644))

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unsupported version", func(c *Config) { c.FormatVersion = 1 }, "format_version"},
		{"empty store path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"unknown log format", func(c *Config) { c.Log.Format = "logfmt" }, "log.format"},
		{"unknown output format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"zero max depth", func(c *Config) { c.Decode.MaxDepth = 0 }, "decode.max_depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
