package installer

import (
	"sort"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/types"
)

// ModeAll selects every enabled module
const ModeAll = "all"

// Select resolves mode against the catalog. ModeAll returns the enabled
// modules sorted by name; any other mode names one module, which is
// returned whether or not it is enabled. An unknown name is an
// UNKNOWN_MODULE error.
func Select(modules map[string]types.Module, mode string) ([]types.Module, error) {
	if mode == ModeAll {
		var selected []types.Module
		for _, name := range Names(modules) {
			if modules[name].Enabled {
				selected = append(selected, withName(modules[name], name))
			}
		}
		return selected, nil
	}

	m, ok := modules[mode]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrUnknownModule, "unknown module: %s", mode).
			WithDetail("module", mode).
			WithDetail("hint", "run with --list-modules to see available modules")
	}
	return []types.Module{withName(m, mode)}, nil
}

// Names returns the catalog's module names in sorted order
func Names(modules map[string]types.Module) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func withName(m types.Module, name string) types.Module {
	if m.Name == "" {
		m.Name = name
	}
	return m
}
