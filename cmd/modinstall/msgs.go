package modinstall

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install module bundles from a declarative catalog"
	MsgInstallShort    = "Install one module or all enabled modules"
	MsgListShort       = "List the modules in the catalog"
	MsgInitConfigShort = "Print or write an example module catalog"
	MsgHintsShort      = "Show help topics"
	MsgHintsLong       = "Without arguments, list the available help topics. With a topic name, display it."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat   = "modinstall %s (commit %s, built %s)\n"
	MsgConfigWritten   = "Wrote example catalog to %s\n"
	MsgConfigExists    = "%s already exists, left unchanged\n"
	MsgAvailableTopics = "Available topics:"
	MsgTopicItem       = "  %s\n"

	// Error messages
	MsgErrIncomplete = "installation completed with failures"
	MsgErrNoCommand  = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStyle       = "Output style: auto, term or text"
	MsgFlagModule      = "Module to install, or 'all' for every enabled module"
	MsgFlagInstallDir  = "Install directory"
	MsgFlagConfig      = "Path to the module catalog (json, yaml or toml)"
	MsgFlagForce       = "Accepted for compatibility; has no effect"
	MsgFlagListModules = "List available modules and exit"
	MsgFlagFormat      = "Catalog format: json, yaml or toml"
	MsgFlagWrite       = "Write the catalog to this path instead of stdout"

	// Debug messages
	MsgDebugForceIgnored = "--force has no effect on any operation"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
