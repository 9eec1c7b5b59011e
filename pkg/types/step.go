package types

import "fmt"

// StepKind identifies what an InstallStep describes
type StepKind int

const (
	// StepPreHook is a "before" hook about to run
	StepPreHook StepKind = iota
	// StepPostHook is an "after" hook about to run
	StepPostHook
	// StepLink is a link that was just created
	StepLink
)

// String returns the string representation of the step kind
func (k StepKind) String() string {
	switch k {
	case StepPreHook:
		return "pre-hook"
	case StepPostHook:
		return "post-hook"
	case StepLink:
		return "link"
	default:
		return "unknown"
	}
}

// InstallStep is a transient progress event. Command is set for hook steps,
// Source and Destination for link steps.
type InstallStep struct {
	Kind        StepKind
	Command     string
	Source      string
	Destination string
}

// PreHookStep builds the event for a "before" hook
func PreHookStep(command string) InstallStep {
	return InstallStep{Kind: StepPreHook, Command: command}
}

// PostHookStep builds the event for an "after" hook
func PostHookStep(command string) InstallStep {
	return InstallStep{Kind: StepPostHook, Command: command}
}

// LinkStep builds the event for a created link
func LinkStep(source, destination string) InstallStep {
	return InstallStep{Kind: StepLink, Source: source, Destination: destination}
}

func (s InstallStep) String() string {
	switch s.Kind {
	case StepPreHook:
		return fmt.Sprintf("Running Pre-Install hook: %s", s.Command)
	case StepPostHook:
		return fmt.Sprintf("Running Post-Install hook: %s", s.Command)
	case StepLink:
		return fmt.Sprintf("linking: %s -> %s", s.Source, s.Destination)
	default:
		return "unknown step"
	}
}

// Outcome is the terminal status of an item
type Outcome struct {
	Err error
}

// Succeeded reports whether the item installed without error
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

func (o Outcome) String() string {
	if o.Err == nil {
		return "Done"
	}
	return fmt.Sprintf("Failed: %v", o.Err)
}
