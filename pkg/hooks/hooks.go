// Package hooks runs the shell hooks attached to an item.
package hooks

import (
	"bytes"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// EnvShell names the user's shell
	EnvShell = "SHELL"

	// DefaultShell is used when neither Options.Shell nor SHELL is set
	DefaultShell = "/bin/sh"
)

// Options contains configuration for the hook runner
type Options struct {
	// Shell overrides the SHELL environment variable
	Shell string
	// Logger defaults to the "hooks" component logger
	Logger *zerolog.Logger
}

// Runner executes hook strings through the user's shell
type Runner struct {
	shell  string
	logger zerolog.Logger
}

// New creates a new hook runner
func New(opts Options) *Runner {
	logger := logging.GetLogger("hooks")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Runner{
		shell:  opts.Shell,
		logger: logger,
	}
}

// Shell returns the shell hooks are run with
func (r *Runner) Shell() string {
	if r.shell != "" {
		return r.shell
	}
	if shell := os.Getenv(EnvShell); shell != "" {
		return shell
	}
	return DefaultShell
}

// Run executes hooks in order, stopping at the first failure.
//
// onStep is called before each hook, including under dry-run and skip-hooks
// where the hook is reported but not executed. Hooks that already ran are
// not undone when a later one fails.
func (r *Runner) Run(hooks []string, opts types.InstallOptions, onStep func(hook string)) error {
	for _, hook := range hooks {
		if onStep != nil {
			onStep(hook)
		}

		if !opts.RunsHooks() {
			r.logger.Debug().
				Str("hook", hook).
				Bool("dry_run", opts.DryRun).
				Bool("skip_hooks", opts.SkipHooks).
				Msg("Skipping hook")
			continue
		}

		if err := r.execute(hook); err != nil {
			return err
		}
	}
	return nil
}

// execute runs a single hook as `<shell> -c <hook>` and waits for it.
// Stderr is captured for the error; stdout is discarded.
func (r *Runner) execute(hook string) error {
	if strings.TrimSpace(hook) == "" {
		return errors.New(errors.ErrHookParse, "hook is empty").WithDetail(errors.DetailCommand, hook)
	}

	start := time.Now()
	shell := r.Shell()

	var stderr bytes.Buffer
	cmd := exec.Command(shell, "-c", hook)
	cmd.Stderr = &stderr

	r.logger.Debug().
		Str("shell", shell).
		Str("hook", hook).
		Msg("Executing hook")

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return errors.Wrapf(err, errors.ErrHookStart, "failed to start hook '%s'", hook).
				WithDetail(errors.DetailCommand, hook).
				WithDetail("shell", shell)
		}

		r.logger.Debug().
			Str("hook", hook).
			Int("exit_code", exitErr.ExitCode()).
			Dur("duration", time.Since(start)).
			Msg("Hook failed")
		// ExitCode is -1 when the process was killed by a signal
		return errors.NewHookExecution(hook, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	}

	r.logger.Debug().
		Str("hook", hook).
		Dur("duration", time.Since(start)).
		Msg("Hook completed")
	return nil
}
