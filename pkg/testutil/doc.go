// Package testutil provides utilities for testing dolink components.
//
// Key components:
//   - TestEnvironment: isolated HOME, XDG directories and dotfiles root
//   - RecordingReporter / RecordingSink: capture progress events per item
//   - MockReporter: testify mock of types.Reporter
//
// Every environment lives under t.TempDir and restores the process
// environment and working directory when the test ends.
package testutil
