package testutil

import (
	"sync"

	"github.com/arthur-debert/dolink/pkg/types"
)

// RecordingReporter keeps every event it receives
type RecordingReporter struct {
	mu       sync.Mutex
	steps    []types.InstallStep
	outcomes []types.Outcome
}

func (r *RecordingReporter) Step(step types.InstallStep) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, step)
}

func (r *RecordingReporter) Finish(outcome types.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

// Steps returns a copy of the recorded steps
func (r *RecordingReporter) Steps() []types.InstallStep {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.InstallStep(nil), r.steps...)
}

// StepStrings returns the rendered recorded steps
func (r *RecordingReporter) StepStrings() []string {
	steps := r.Steps()
	out := make([]string, len(steps))
	for i, step := range steps {
		out[i] = step.String()
	}
	return out
}

// Outcomes returns every Finish call; a well behaved installer makes one.
func (r *RecordingReporter) Outcomes() []types.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Outcome(nil), r.outcomes...)
}

// RecordingSink hands out one RecordingReporter per item
type RecordingSink struct {
	mu        sync.Mutex
	reporters map[string]*RecordingReporter
	order     []string
}

// NewRecordingSink creates an empty sink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{reporters: make(map[string]*RecordingReporter)}
}

func (s *RecordingSink) Reporter(item string) types.Reporter {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &RecordingReporter{}
	s.reporters[item] = r
	s.order = append(s.order, item)
	return r
}

// Get returns the reporter created for item, or nil
func (s *RecordingSink) Get(item string) *RecordingReporter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reporters[item]
}

// Items lists the items reporters were requested for, in request order
func (s *RecordingSink) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}
