// Package ui renders installation progress.
//
// A Progress hands out one types.Reporter per item. The terminal
// implementation shows a pterm spinner per item; the text implementation
// writes one line per event and is what pipes and CI logs get.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/types"
)

// DryRunPrefix marks every progress line of a dry run
const DryRunPrefix = "[DRY RUN] "

// Progress is a per-run sink of item reporters. Reporter is safe to call
// from one goroutine while reporters it returned are used from others.
type Progress interface {
	Reporter(item string) types.Reporter
	// Stop flushes and releases the output; call it once after the run.
	Stop() error
}

// ProgressOptions contains configuration for NewProgress
type ProgressOptions struct {
	// Output defaults to os.Stdout
	Output io.Writer
	// Format FormatAuto is resolved against Output when it is an *os.File
	Format Format
	// DryRun prefixes every line with DryRunPrefix
	DryRun bool
}

// NewProgress creates the progress sink matching opts.Format
func NewProgress(opts ProgressOptions) (Progress, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	format := opts.Format
	if format == FormatAuto {
		format = FormatText
		if file, ok := out.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal:
		return newSpinnerProgress(out, opts.DryRun)
	case FormatText:
		return NewTextProgress(out, opts.DryRun), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

func prefix(dryRun bool) string {
	if dryRun {
		return DryRunPrefix
	}
	return ""
}

// Discard is a Progress that drops every event
var Discard Progress = discard{}

type discard struct{}

func (discard) Reporter(string) types.Reporter { return nopReporter{} }
func (discard) Stop() error                    { return nil }

type nopReporter struct{}

func (nopReporter) Step(types.InstallStep) {}
func (nopReporter) Finish(types.Outcome)   {}
