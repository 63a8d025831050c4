// Package config loads the module catalog and the CLI settings.
//
// The catalog is a JSON, YAML or TOML file mapping module names to their
// operations. Settings are layered with koanf: embedded defaults, then the
// user settings file under the XDG config home, then MODINSTALL_*
// environment variables, then command-line flags.
package config
