// Package platform describes the machine the installer runs on.
//
// A Descriptor and an Environment are captured once at startup and then
// passed by value to every component that needs platform-dependent
// behavior (binary naming, install directories, host file locations).
// Nothing in this package re-reads the running platform after capture.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// OS family names as reported by runtime.GOOS
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExecutableSuffix is appended to executable names on Windows
const ExecutableSuffix = ".exe"

// archAliases normalizes the many spellings of the same CPU architecture
var archAliases = map[string]string{
	"x86_64":  "amd64",
	"amd64":   "amd64",
	"x64":     "amd64",
	"arm64":   "arm64",
	"aarch64": "arm64",
}

// Descriptor identifies the OS family and CPU architecture of the target
type Descriptor struct {
	OS   string
	Arch string
}

// Detect returns the Descriptor of the running process
func Detect() Descriptor {
	return New(runtime.GOOS, runtime.GOARCH)
}

// New builds a Descriptor from raw OS and architecture tokens
func New(osName, arch string) Descriptor {
	return Descriptor{
		OS:   strings.ToLower(osName),
		Arch: NormalizeArch(arch),
	}
}

// NormalizeArch maps an architecture token through the alias table.
// Unknown tokens are returned lowercased.
func NormalizeArch(arch string) string {
	arch = strings.ToLower(arch)
	if canonical, ok := archAliases[arch]; ok {
		return canonical
	}
	return arch
}

// IsWindows reports whether the descriptor is a Windows family OS
func (d Descriptor) IsWindows() bool {
	return d.OS == Windows
}

// String returns os/arch
func (d Descriptor) String() string {
	return d.OS + "/" + d.Arch
}

// PrebuiltName returns the file name of a prebuilt binary for this platform,
// e.g. "tool-linux-amd64" or "tool-windows-arm64.exe". The second return is
// false for OS families that have no prebuilt naming template.
func (d Descriptor) PrebuiltName(base string) (string, bool) {
	switch d.OS {
	case Darwin:
		return base + "-darwin-" + d.Arch, true
	case Linux:
		return base + "-linux-" + d.Arch, true
	case Windows:
		return base + "-windows-" + d.Arch + ExecutableSuffix, true
	default:
		return "", false
	}
}

// ExecutableName applies the OS executable suffix to name.
// The suffix is never doubled.
func (d Descriptor) ExecutableName(name string) string {
	if d.IsWindows() && !strings.HasSuffix(strings.ToLower(name), ExecutableSuffix) {
		return name + ExecutableSuffix
	}
	return name
}

// Environment is a read-only snapshot of the environment variables the
// installer consults when building candidate paths
type Environment struct {
	Home         string
	AppData      string
	LocalAppData string
	UserProfile  string
	Path         []string
}

// CaptureEnvironment reads the process environment once
func CaptureEnvironment() Environment {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	return Environment{
		Home:         home,
		AppData:      os.Getenv("APPDATA"),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
		UserProfile:  os.Getenv("USERPROFILE"),
		Path:         filepath.SplitList(os.Getenv("PATH")),
	}
}

// OnPath reports whether dir is one of the command search path entries
func (e Environment) OnPath(dir string) bool {
	want := filepath.Clean(dir)
	for _, entry := range e.Path {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}

// ExpandHome expands a leading ~ to the captured home directory
func (e Environment) ExpandHome(path string) string {
	if path == "~" {
		return e.Home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(e.Home, path[2:])
	}
	return path
}
