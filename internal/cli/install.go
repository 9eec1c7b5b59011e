package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/hooks"
	"github.com/arthur-debert/dolink/pkg/install"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/arthur-debert/dolink/pkg/ui"
	"github.com/arthur-debert/dolink/pkg/ui/styles"
	"github.com/spf13/cobra"
)

type installFlags struct {
	force     bool
	parent    bool
	dryRun    bool
	skipHooks bool
	jobs      int
}

func newInstallCmd(root *rootOptions) *cobra.Command {
	flags := &installFlags{}

	cmd := &cobra.Command{
		Use:               "install [items...]",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		Example:           MsgInstallExample,
		ValidArgsFunction: itemNamesCompletion(root),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, root, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVarP(&flags.parent, "parent", "p", false, MsgFlagParent)
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "d", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&flags.skipHooks, "skip-hooks", false, MsgFlagSkipHooks)
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, MsgFlagJobs)

	return cmd
}

func runInstall(cmd *cobra.Command, root *rootOptions, flags *installFlags, args []string) error {
	logger := logging.GetLogger("cli.install")
	defer logging.LogOperationStart(logger, "install")()

	format, err := root.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	opts := types.InstallOptions{
		Force:            flags.force,
		CreateParentDirs: flags.parent,
		DryRun:           flags.dryRun,
		SkipHooks:        flags.skipHooks,
		SelectedItems:    args,
	}

	jobs := flags.jobs
	if jobs <= 0 {
		jobs = root.settings.Jobs
	}

	driver := install.NewDriver(install.DriverOptions{
		Installer: install.New(install.Options{
			Hooks: hooks.New(hooks.Options{Shell: root.settings.Shell}),
		}),
		Jobs: jobs,
	})

	progress, err := ui.NewProgress(ui.ProgressOptions{
		Output: cmd.OutOrStdout(),
		Format: format,
		DryRun: opts.DryRun,
	})
	if err != nil {
		return err
	}

	summary := driver.Run(cfg, opts, progress)
	if err := progress.Stop(); err != nil {
		logger.Debug().Err(err).Msg("Failed to stop progress output")
	}

	out := cmd.OutOrStdout()
	if opts.DryRun {
		_, _ = fmt.Fprintln(out, MsgDryRunNotice)
	}
	_, _ = fmt.Fprintf(out, MsgDoneIn, summary.Duration.Seconds())

	return summaryError(cmd, summary)
}

// summaryError prints invalid selections and turns a failed run into an
// error so the process exits non-zero.
func summaryError(cmd *cobra.Command, summary install.Summary) error {
	if summary.OK() {
		return nil
	}

	invalid := install.InvalidItems(summary.Invalid)
	for _, name := range invalid {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
			styles.Render("Error", MsgInvalidPrefix+fmt.Sprintf(MsgInvalidItem, name)))
	}

	failed := summary.Failed()
	if len(failed) == 0 {
		return errors.Newf(errors.ErrInvalidItem, MsgErrInvalidItems, strings.Join(invalid, ", ")).
			WithDetail("items", invalid)
	}

	names := make([]string, len(failed))
	for i, r := range failed {
		names[i] = r.Name
	}
	return errors.Newf(errors.ErrItemsFailed, MsgErrItemsFailed, len(failed), len(summary.Results), strings.Join(names, ", ")).
		WithDetail("items", names)
}
