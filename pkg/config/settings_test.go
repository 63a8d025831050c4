package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modinstall/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"INSTALL_DIR", "CONFIG", "MODULE", "HELPER_NAME", "BACKUP_SUFFIX"} {
		t.Setenv(config.EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+key))
	}
	return dir
}

func TestLoadSettingsDefaults(t *testing.T) {
	isolate(t)

	s, err := config.LoadSettings(nil)
	require.NoError(t, err)

	assert.Equal(t, "~/.claude", s.InstallDir)
	assert.Equal(t, "config.json", s.Config)
	assert.Equal(t, "core", s.Module)
	assert.Equal(t, "codeagent-wrapper", s.HelperName)
	assert.Equal(t, ".backup", s.BackupSuffix)
}

func TestLoadSettingsLayering(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "modinstall", "settings.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("module = \"all\"\ninstall_dir = \"/from/file\"\n"), 0644))
	assert.Equal(t, path, config.SettingsPath())

	t.Setenv("MODINSTALL_INSTALL_DIR", "/from/env")

	s, err := config.LoadSettings(map[string]interface{}{config.KeyConfig: "/from/flag.json"})
	require.NoError(t, err)

	assert.Equal(t, "all", s.Module, "file overrides defaults")
	assert.Equal(t, "/from/env", s.InstallDir, "env overrides file")
	assert.Equal(t, "/from/flag.json", s.Config, "flags override everything")
}

func TestDefaultSettingsContent(t *testing.T) {
	assert.Contains(t, config.DefaultSettingsContent(), "install_dir")
}
