package types

// InstallOptions are the per-run switches derived from the command line
type InstallOptions struct {
	// Force removes an existing destination before linking
	Force bool

	// CreateParentDirs creates missing parent directories of destinations
	CreateParentDirs bool

	// DryRun reports hooks and links without running or creating anything
	DryRun bool

	// SkipHooks reports hooks without running them; links are still created
	SkipHooks bool

	// SelectedItems names the items to install. Empty means all items.
	SelectedItems []string
}

// RunsHooks reports whether hook processes are actually spawned
func (o InstallOptions) RunsHooks() bool {
	return !o.DryRun && !o.SkipHooks
}
