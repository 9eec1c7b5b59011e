package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Install dotfiles as symbolic links"
	MsgInstallShort = "Link items and run their hooks"
	MsgListShort    = "Show items and the state of their links"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgDoneIn        = "Done in %.2fs\n"
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgNoItems       = "No items configured."
	MsgItemHeader    = "%s\n"
	MsgMappingLine   = "  %s -> %s  [%s]\n"
	MsgBadMapping    = "  %s  [%s]\n"
	MsgHooksLine     = "  hooks: %d before, %d after\n"
	MsgInvalidPrefix = "Error: "
	MsgInvalidItem   = "invalid item '%s'"

	// Error messages
	MsgErrItemsFailed   = "%d of %d item(s) failed: %s"
	MsgErrInvalidItems  = "invalid item(s): %s"
	MsgErrLoadSettings  = "failed to load settings"
	MsgErrResolveConfig = "config file %s not found"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Path to the configuration file (default ~/.dotfiles/config.toml)"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagForce     = "Replace whatever exists at a destination"
	MsgFlagParent    = "Create missing parent directories of destinations"
	MsgFlagDryRun    = "Show hooks and links without running or creating anything"
	MsgFlagSkipHooks = "Link without running before/after hooks"
	MsgFlagJobs      = "Number of items installed at once (default: number of CPUs)"
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

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
