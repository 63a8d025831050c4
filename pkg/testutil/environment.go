package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// envPrefix matches the settings environment prefix of the CLI
const envPrefix = "MODINSTALL_"

// TestEnvironment is an isolated filesystem layout for one test: a source
// root holding payloads and the catalog, an install root, and private
// HOME and XDG directories.
type TestEnvironment struct {
	Root        string
	SourceRoot  string
	InstallRoot string
	HomeDir     string
	StateHome   string
	ConfigHome  string

	t *testing.T
}

// NewTestEnvironment creates the layout below t.TempDir() and points HOME,
// XDG_STATE_HOME and XDG_CONFIG_HOME at it. MODINSTALL_* variables
// inherited from the parent environment are unset and NO_COLOR is set.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:        root,
		SourceRoot:  filepath.Join(root, "src"),
		InstallRoot: filepath.Join(root, "install"),
		HomeDir:     filepath.Join(root, "home"),
		StateHome:   filepath.Join(root, "state"),
		ConfigHome:  filepath.Join(root, "xdgconfig"),
		t:           t,
	}
	CreateDir(t, root, "src")
	CreateDir(t, root, "home")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("NO_COLOR", "1")
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, envPrefix) {
			// t.Setenv registers the restore before we unset
			t.Setenv(key, "")
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("Failed to unset %s: %v", key, err)
			}
		}
	}

	return env
}

// Source writes a payload file below the source root
func (env *TestEnvironment) Source(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.SourceRoot, name, content)
}

// Sources writes several payload files below the source root
func (env *TestEnvironment) Sources(files map[string]string) {
	env.t.Helper()
	CreateTree(env.t, env.SourceRoot, files)
}

// WriteCatalog writes a catalog document below the source root and returns its path
func (env *TestEnvironment) WriteCatalog(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.SourceRoot, name, content)
}

// Installed returns the path of name below the install root
func (env *TestEnvironment) Installed(name string) string {
	return filepath.Join(env.InstallRoot, filepath.FromSlash(name))
}

// InstalledTree returns every file below the install root
func (env *TestEnvironment) InstalledTree() map[string]string {
	env.t.Helper()
	return ReadTree(env.t, env.InstallRoot)
}
