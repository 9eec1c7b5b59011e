package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/dolink/pkg/types"
)

// TextProgress writes one line per event. Lines from concurrent items
// interleave but are never torn.
type TextProgress struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewTextProgress creates a plain text progress sink writing to out
func NewTextProgress(out io.Writer, dryRun bool) *TextProgress {
	return &TextProgress{out: out, prefix: prefix(dryRun)}
}

func (p *TextProgress) Reporter(item string) types.Reporter {
	return &textReporter{progress: p, item: item}
}

func (p *TextProgress) Stop() error { return nil }

func (p *TextProgress) line(item, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "%s%s: %s\n", p.prefix, item, msg)
}

type textReporter struct {
	progress *TextProgress
	item     string
}

func (r *textReporter) Step(step types.InstallStep) {
	r.progress.line(r.item, step.String())
}

func (r *textReporter) Finish(outcome types.Outcome) {
	r.progress.line(r.item, outcome.String())
}
