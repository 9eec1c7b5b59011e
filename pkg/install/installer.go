package install

import (
	"github.com/arthur-debert/dolink/pkg/hooks"
	"github.com/arthur-debert/dolink/pkg/linker"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the installer
type Options struct {
	// Linker defaults to a linker on the OS filesystem
	Linker *linker.Linker
	// Hooks defaults to a runner using $SHELL
	Hooks *hooks.Runner
	// Logger defaults to the "install" component logger
	Logger *zerolog.Logger
}

// Installer installs a single item
type Installer struct {
	linker *linker.Linker
	hooks  *hooks.Runner
	logger zerolog.Logger
}

// New creates a new installer
func New(opts Options) *Installer {
	logger := logging.GetLogger("install")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	lnk := opts.Linker
	if lnk == nil {
		lnk = linker.New(linker.Options{})
	}
	runner := opts.Hooks
	if runner == nil {
		runner = hooks.New(hooks.Options{})
	}

	return &Installer{
		linker: lnk,
		hooks:  runner,
		logger: logger,
	}
}

// InstallItem runs the before hooks, links every mapping in order, then runs
// the after hooks. The first error stops the item; whatever already ran or
// was linked stays in place.
func (i *Installer) InstallItem(item types.ConfigItem, opts types.InstallOptions, onStep func(types.InstallStep)) error {
	emit := func(step types.InstallStep) {
		if onStep != nil {
			onStep(step)
		}
	}

	if len(item.Before) > 0 {
		if err := i.hooks.Run(item.Before, opts, func(hook string) {
			emit(types.PreHookStep(hook))
		}); err != nil {
			return err
		}
	}

	for _, mapping := range item.Mappings {
		source, destination, err := linker.SplitMapping(mapping)
		if err != nil {
			return err
		}
		if err := i.linker.CreateLink(source, destination, opts); err != nil {
			return err
		}
		emit(types.LinkStep(source, destination))
	}

	if len(item.After) > 0 {
		if err := i.hooks.Run(item.After, opts, func(hook string) {
			emit(types.PostHookStep(hook))
		}); err != nil {
			return err
		}
	}

	return nil
}

// Install installs item and reports to reporter, calling Finish exactly once
// with the outcome. The returned error is the same one Finish received.
func (i *Installer) Install(name string, item types.ConfigItem, opts types.InstallOptions, reporter types.Reporter) error {
	if reporter == nil {
		reporter = nopReporter{}
	}

	logger := i.logger.With().Str("item", name).Logger()
	logger.Debug().
		Int("mappings", len(item.Mappings)).
		Int("before", len(item.Before)).
		Int("after", len(item.After)).
		Bool("dry_run", opts.DryRun).
		Msg("Installing item")

	err := i.InstallItem(item, opts, reporter.Step)
	reporter.Finish(types.Outcome{Err: err})

	if err != nil {
		logger.Debug().Err(err).Msg("Item failed")
		return err
	}
	logger.Debug().Msg("Item installed")
	return nil
}

type nopReporter struct{}

func (nopReporter) Step(types.InstallStep) {}
func (nopReporter) Finish(types.Outcome)   {}
