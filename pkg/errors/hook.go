package errors

import "fmt"

// Detail keys carried by ErrHookExecution errors
const (
	DetailCommand  = "command"
	DetailExitCode = "exit_code"
	DetailSignaled = "signaled"
	DetailStderr   = "stderr"
)

// NewHookExecution builds the error for a hook that did not exit cleanly.
// A negative exitCode means the process was terminated by a signal.
func NewHookExecution(command string, exitCode int, stderr string) *DolinkError {
	status := fmt.Sprintf("exited with code %d", exitCode)
	signaled := exitCode < 0
	if signaled {
		status = "terminated by signal"
	}

	err := Newf(ErrHookExecution, "hook '%s' %s, stderr: '%s'", command, status, stderr).
		WithDetail(DetailCommand, command).
		WithDetail(DetailSignaled, signaled).
		WithDetail(DetailStderr, stderr)
	if !signaled {
		err.WithDetail(DetailExitCode, exitCode)
	}
	return err
}
