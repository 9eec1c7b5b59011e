package install

import (
	"runtime"
	"time"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ReporterSink hands out one reporter per item. It is called from the
// driver's goroutine only; each reporter it returns is then owned by a
// single worker.
type ReporterSink interface {
	Reporter(item string) types.Reporter
}

// ItemResult is the outcome of one item
type ItemResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Succeeded reports whether the item installed without error
func (r ItemResult) Succeeded() bool {
	return r.Err == nil
}

// Summary collects the per-item results of a run
type Summary struct {
	// Results are in selection order
	Results []ItemResult
	// Invalid combines the INVALID_ITEM errors for unknown selected names
	Invalid error
	// Duration is the wall time of the whole run
	Duration time.Duration
}

// Failed returns the results that did not succeed
func (s Summary) Failed() []ItemResult {
	var failed []ItemResult
	for _, r := range s.Results {
		if !r.Succeeded() {
			failed = append(failed, r)
		}
	}
	return failed
}

// OK is true when every selected name was valid and every item succeeded
func (s Summary) OK() bool {
	return s.Invalid == nil && len(s.Failed()) == 0
}

// DriverOptions contains configuration for the driver
type DriverOptions struct {
	// Installer defaults to New(Options{})
	Installer *Installer
	// Jobs bounds concurrent items; zero or less means runtime.NumCPU()
	Jobs int
	// Logger defaults to the "driver" component logger
	Logger *zerolog.Logger
}

// Driver installs many items concurrently
type Driver struct {
	installer *Installer
	jobs      int
	logger    zerolog.Logger
}

// NewDriver creates a new driver
func NewDriver(opts DriverOptions) *Driver {
	logger := logging.GetLogger("driver")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	installer := opts.Installer
	if installer == nil {
		installer = New(Options{})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	return &Driver{
		installer: installer,
		jobs:      jobs,
		logger:    logger,
	}
}

// Jobs returns the size of the worker pool
func (d *Driver) Jobs() int {
	return d.jobs
}

// Run installs the selected items of cfg. Unknown names are reported in
// Summary.Invalid and the valid ones are still installed. Items run
// independently: a failure never stops or cancels another item.
func (d *Driver) Run(cfg *types.Config, opts types.InstallOptions, sink ReporterSink) Summary {
	start := time.Now()

	if cfg == nil {
		return Summary{Invalid: errors.New(errors.ErrInvalidInput, "no configuration loaded")}
	}
	if sink == nil {
		sink = nopSink{}
	}

	names, invalid := ValidateSelection(cfg, opts.SelectedItems)
	for _, err := range multierr.Errors(invalid) {
		d.logger.Error().Err(err).Msg("Invalid item selected")
	}

	d.logger.Info().
		Int("items", len(names)).
		Int("jobs", d.jobs).
		Bool("dry_run", opts.DryRun).
		Msg("Starting installation")

	results := make([]ItemResult, len(names))
	// Workers always return nil so one item never stops the others.
	var group errgroup.Group
	group.SetLimit(d.jobs)

	for idx, name := range names {
		reporter := sink.Reporter(name)
		item := cfg.Items[name]

		group.Go(func() error {
			itemStart := time.Now()
			err := d.installer.Install(name, item, opts, reporter)
			results[idx] = ItemResult{
				Name:     name,
				Err:      err,
				Duration: time.Since(itemStart),
			}
			return nil
		})
	}
	_ = group.Wait()

	summary := Summary{
		Results:  results,
		Invalid:  invalid,
		Duration: time.Since(start),
	}

	for _, r := range summary.Failed() {
		d.logger.Warn().Str("item", r.Name).Err(r.Err).Msg("Item failed")
	}
	d.logger.Info().
		Int("installed", len(results)-len(summary.Failed())).
		Int("failed", len(summary.Failed())).
		Dur("duration", summary.Duration).
		Msg("Installation finished")

	return summary
}

type nopSink struct{}

func (nopSink) Reporter(string) types.Reporter { return nopReporter{} }
