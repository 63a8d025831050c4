package platform_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modinstall/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x86_64", "amd64"},
		{"AMD64", "amd64"},
		{"aarch64", "arm64"},
		{"arm64", "arm64"},
		{"riscv64", "riscv64"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.NormalizeArch(tt.in))
		})
	}
}

func TestPrebuiltNameAliasEquivalence(t *testing.T) {
	a, ok := platform.New("linux", "x86_64").PrebuiltName("codeagent-wrapper")
	require.True(t, ok)
	b, ok := platform.New("linux", "amd64").PrebuiltName("codeagent-wrapper")
	require.True(t, ok)

	assert.Equal(t, "codeagent-wrapper-linux-amd64", a)
	assert.Equal(t, a, b)
}

func TestPrebuiltNamePerOS(t *testing.T) {
	tests := []struct {
		os, arch string
		want     string
		ok       bool
	}{
		{"darwin", "arm64", "tool-darwin-arm64", true},
		{"linux", "aarch64", "tool-linux-arm64", true},
		{"windows", "x86_64", "tool-windows-amd64.exe", true},
		{"freebsd", "amd64", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.os+"/"+tt.arch, func(t *testing.T) {
			got, ok := platform.New(tt.os, tt.arch).PrebuiltName("tool")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutableName(t *testing.T) {
	win := platform.New("windows", "amd64")
	linux := platform.New("linux", "amd64")

	assert.Equal(t, "tool.exe", win.ExecutableName("tool"))
	assert.Equal(t, "tool.exe", win.ExecutableName("tool.exe"))
	assert.Equal(t, "tool", linux.ExecutableName("tool"))
}

func TestEnvironmentOnPath(t *testing.T) {
	env := platform.Environment{Path: []string{"/usr/bin", "/home/u/.local/bin/", ""}}

	assert.True(t, env.OnPath("/home/u/.local/bin"))
	assert.True(t, env.OnPath("/usr/bin"))
	assert.False(t, env.OnPath("/usr/local/bin"))
}

func TestExpandHome(t *testing.T) {
	env := platform.Environment{Home: "/home/u"}

	assert.Equal(t, "/home/u", env.ExpandHome("~"))
	assert.Equal(t, filepath.Join("/home/u", ".claude"), env.ExpandHome("~/.claude"))
	assert.Equal(t, "/opt/x", env.ExpandHome("/opt/x"))
}

func TestBinDirCandidates(t *testing.T) {
	env := platform.Environment{Home: "/home/u", LocalAppData: "/appdata/local"}

	unix := platform.BinDirCandidates(platform.New("linux", "amd64"), env, "helper")
	assert.Equal(t, []string{filepath.Join("/home/u", ".local", "bin"), "/usr/local/bin"}, unix)

	win := platform.BinDirCandidates(platform.New("windows", "amd64"), env, "helper")
	assert.Equal(t, []string{
		filepath.Join("/home/u", ".local", "bin"),
		filepath.Join("/appdata/local", "Programs", "helper"),
		filepath.Join("/home/u", "bin"),
	}, win)
}

func TestBinDirCandidatesWithoutHome(t *testing.T) {
	unix := platform.BinDirCandidates(platform.New("linux", "amd64"), platform.Environment{}, "helper")
	assert.Equal(t, []string{"/usr/local/bin"}, unix)

	win := platform.BinDirCandidates(platform.New("windows", "amd64"), platform.Environment{LocalAppData: "/appdata/local"}, "helper")
	assert.Equal(t, []string{filepath.Join("/appdata/local", "Programs", "helper")}, win)

	assert.Empty(t, platform.BinDirCandidates(platform.New("windows", "amd64"), platform.Environment{}, "helper"))
}

func TestHostFileCandidatesSkipsUnsetRoots(t *testing.T) {
	win := platform.HostFileCandidates(platform.New("windows", "amd64"), platform.Environment{AppData: "/roaming"})
	require.Len(t, win, 1)
	assert.Equal(t, filepath.Join("/roaming", "npm", "node_modules", "@augmentcode", "auggie", "augment.mjs"), win[0])

	linux := platform.HostFileCandidates(platform.New("linux", "amd64"), platform.Environment{Home: "/home/u"})
	assert.Len(t, linux, 3)
	assert.Equal(t, filepath.Join("/home/u", ".npm-global", "lib", "node_modules", "@augmentcode", "auggie", "augment.mjs"), linux[0])

	darwin := platform.HostFileCandidates(platform.New("darwin", "arm64"), platform.Environment{Home: "/Users/u"})
	assert.Len(t, darwin, 4)

	homeless := platform.HostFileCandidates(platform.New("linux", "amd64"), platform.Environment{})
	assert.Equal(t, []string{filepath.Join("/usr/local/lib/node_modules", "@augmentcode", "auggie", "augment.mjs")}, homeless)
}
