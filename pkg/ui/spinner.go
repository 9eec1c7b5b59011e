package ui

import (
	"io"
	"sync"

	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/pterm/pterm"
)

// spinnerProgress shows one pterm spinner per item under a MultiPrinter
type spinnerProgress struct {
	mu     sync.Mutex
	multi  *pterm.MultiPrinter
	prefix string
}

func newSpinnerProgress(out io.Writer, dryRun bool) (*spinnerProgress, error) {
	multi, err := pterm.DefaultMultiPrinter.WithWriter(out).Start()
	if err != nil {
		return nil, err
	}
	return &spinnerProgress{multi: multi, prefix: prefix(dryRun)}, nil
}

func (p *spinnerProgress) Reporter(item string) types.Reporter {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := &spinnerReporter{progress: p, item: item}
	spinner, err := pterm.DefaultSpinner.
		WithWriter(p.multi.NewWriter()).
		WithRemoveWhenDone(false).
		Start(p.prefix + item)
	if err != nil {
		logger := logging.GetLogger("ui")
		logger.Debug().Err(err).Str("item", item).Msg("Failed to start spinner")
		return r
	}
	r.spinner = spinner
	return r
}

func (p *spinnerProgress) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.multi.Stop()
	return err
}

type spinnerReporter struct {
	progress *spinnerProgress
	spinner  *pterm.SpinnerPrinter
	item     string
}

func (r *spinnerReporter) text(msg string) string {
	return r.progress.prefix + r.item + ": " + msg
}

func (r *spinnerReporter) Step(step types.InstallStep) {
	if r.spinner == nil {
		return
	}
	r.progress.mu.Lock()
	defer r.progress.mu.Unlock()
	r.spinner.UpdateText(r.text(step.String()))
}

func (r *spinnerReporter) Finish(outcome types.Outcome) {
	if r.spinner == nil {
		return
	}
	r.progress.mu.Lock()
	defer r.progress.mu.Unlock()
	if outcome.Succeeded() {
		r.spinner.Success(r.text(outcome.String()))
		return
	}
	r.spinner.Fail(r.text(outcome.String()))
}
