package platform

import "path/filepath"

// hostFileRel is the Auggie MCP entry point below a node_modules directory
var hostFileRel = filepath.Join("@augmentcode", "auggie", "augment.mjs")

// BinDirCandidates returns the ordered directories a helper binary may be
// installed into. The first entry is always attempted; later entries are
// only used when they already exist. Home-rooted entries are left out when
// the home directory is unknown, so nothing lands relative to the working
// directory.
func BinDirCandidates(d Descriptor, env Environment, helperName string) []string {
	var dirs []string
	if d.IsWindows() {
		if env.Home != "" {
			dirs = append(dirs, filepath.Join(env.Home, ".local", "bin"))
		}
		if env.LocalAppData != "" {
			dirs = append(dirs, filepath.Join(env.LocalAppData, "Programs", helperName))
		}
		if env.Home != "" {
			dirs = append(dirs, filepath.Join(env.Home, "bin"))
		}
		return dirs
	}
	if env.Home != "" {
		dirs = append(dirs, filepath.Join(env.Home, ".local", "bin"))
	}
	return append(dirs, "/usr/local/bin")
}

// HostFileCandidates returns the ordered absolute paths where the host
// application file may be installed. Candidates rooted at an unset
// environment variable are left out.
func HostFileCandidates(d Descriptor, env Environment) []string {
	var paths []string
	if d.IsWindows() {
		for _, base := range []string{env.AppData, env.LocalAppData} {
			if base != "" {
				paths = append(paths, filepath.Join(base, "npm", "node_modules", hostFileRel))
			}
		}
		if env.UserProfile != "" {
			paths = append(paths, filepath.Join(env.UserProfile, "node_modules", hostFileRel))
		}
		return paths
	}

	if env.Home != "" {
		paths = append(paths, filepath.Join(env.Home, ".npm-global", "lib", "node_modules", hostFileRel))
	}
	paths = append(paths, filepath.Join("/usr/local/lib/node_modules", hostFileRel))
	if env.Home != "" {
		paths = append(paths, filepath.Join(env.Home, ".local", "lib", "node_modules", hostFileRel))
	}
	if d.OS == Darwin {
		paths = append(paths, filepath.Join("/opt/homebrew/lib/node_modules", hostFileRel))
	}
	return paths
}
