// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_item_error",
			code:    errors.ErrInvalidItem,
			message: "unknown item 'vim'",
			wantStr: "[INVALID_ITEM] unknown item 'vim'",
		},
		{
			name:    "mapping_error",
			code:    errors.ErrFileMapping,
			message: "invalid mapping 'abc'",
			wantStr: "[FILE_MAPPING] invalid mapping 'abc'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("permission denied")

	err := errors.Wrapf(base, errors.ErrSymlinkCreate, "cannot link %s", "/tmp/x")
	require.NotNil(t, err)

	assert.Equal(t, "[SYMLINK_CREATE] cannot link /tmp/x: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))
	assert.Same(t, base, stderrors.Unwrap(err))

	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestIsComparesCodes(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrDirCreate, "mkdir failed"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrDirCreate, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrSymlinkCreate, "")))
}

func TestCodeHelpers(t *testing.T) {
	err := fmt.Errorf("context: %w", errors.New(errors.ErrInvalidPath, "too many ..").WithDetail("path", "/.."))

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
	assert.False(t, errors.IsErrorCode(err, errors.ErrHomeNotSet))
	assert.Equal(t, errors.ErrInvalidPath, errors.GetErrorCode(err))
	assert.Equal(t, "/..", errors.GetErrorDetails(err)["path"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
	assert.False(t, errors.IsErrorCode(plain, errors.ErrUnknown), "only coded errors match a code")
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
}

func TestNewHookExecution(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		exitCode int
		stderr   string
		wantMsg  string
		signaled bool
	}{
		{
			name:     "non_zero_exit",
			command:  "exit 3",
			exitCode: 3,
			stderr:   "boom",
			wantMsg:  "hook 'exit 3' exited with code 3, stderr: 'boom'",
		},
		{
			name:     "signal",
			command:  "kill -9 $$",
			exitCode: -1,
			wantMsg:  "hook 'kill -9 $$' terminated by signal, stderr: ''",
			signaled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.NewHookExecution(tt.command, tt.exitCode, tt.stderr)

			assert.Equal(t, errors.ErrHookExecution, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.command, err.Details[errors.DetailCommand])
			assert.Equal(t, tt.stderr, err.Details[errors.DetailStderr])
			assert.Equal(t, tt.signaled, err.Details[errors.DetailSignaled])

			code, hasCode := err.Details[errors.DetailExitCode]
			assert.Equal(t, !tt.signaled, hasCode)
			if hasCode {
				assert.Equal(t, tt.exitCode, code)
			}
		})
	}
}
