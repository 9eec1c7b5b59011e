// pkg/install/driver_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: real filesystem in temp dir, /bin/sh
// PURPOSE: End-to-end install scenarios through the driver

package install_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/install"
	"github.com/arthur-debert/dolink/pkg/testutil"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(jobs int) *install.Driver {
	logger := zerolog.Nop()
	return install.NewDriver(install.DriverOptions{
		Installer: newInstaller(),
		Jobs:      jobs,
		Logger:    &logger,
	})
}

func singleOutcome(t *testing.T, sink *testutil.RecordingSink, item string) types.Outcome {
	t.Helper()
	r := sink.Get(item)
	require.NotNil(t, r, "no reporter for %s", item)
	outcomes := r.Outcomes()
	require.Len(t, outcomes, 1)
	return outcomes[0]
}

func TestDriver_LinksFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "a"})
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"item": {Mappings: []string{"./a.txt:./b.txt"}},
	}}

	sink := testutil.NewRecordingSink()
	summary := newDriver(0).Run(cfg, types.InstallOptions{}, sink)

	require.True(t, summary.OK(), "summary: %+v", summary)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	target, err := os.Readlink(env.Path("b.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "a.txt"), target)
	assert.Equal(t, "Done", singleOutcome(t, sink, "item").String())
}

func TestDriver_FailingBeforeHook(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "a"})
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"item": {
			Mappings: []string{"./a.txt:./b.txt"},
			Before:   []string{"exit 1"},
		},
	}}

	sink := testutil.NewRecordingSink()
	summary := newDriver(0).Run(cfg, types.InstallOptions{}, sink)

	require.Len(t, summary.Failed(), 1)
	assert.True(t, errors.IsErrorCode(summary.Failed()[0].Err, errors.ErrHookExecution))
	_, err := os.Lstat(env.Path("b.txt"))
	assert.True(t, os.IsNotExist(err), "no link may be created")
	assert.Contains(t, singleOutcome(t, sink, "item").String(), "Failed: ")
}

func TestDriver_FailingAfterHook(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "a"})
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"item": {
			Mappings: []string{"./a.txt:./b.txt"},
			After:    []string{"exit 4"},
		},
	}}

	sink := testutil.NewRecordingSink()
	summary := newDriver(0).Run(cfg, types.InstallOptions{}, sink)

	require.Len(t, summary.Failed(), 1)
	assert.Equal(t, 4, errors.GetErrorDetails(summary.Failed()[0].Err)[errors.DetailExitCode])
	_, err := os.Readlink(env.Path("b.txt"))
	assert.NoError(t, err, "links from the finished phase stay")
	assert.False(t, singleOutcome(t, sink, "item").Succeeded())
}

func TestDriver_ItemsAreIndependent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"good.txt": "good"})
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"bad":  {Before: []string{"exit 1"}},
		"good": {Mappings: []string{"./good.txt:~/good.txt"}},
	}}

	for _, jobs := range []int{1, 4} {
		require.NoError(t, os.RemoveAll(env.HomePath("good.txt")))

		sink := testutil.NewRecordingSink()
		summary := newDriver(jobs).Run(cfg, types.InstallOptions{}, sink)

		require.Len(t, summary.Results, 2)
		assert.Equal(t, "bad", summary.Results[0].Name)
		assert.False(t, summary.Results[0].Succeeded())
		assert.Equal(t, "good", summary.Results[1].Name)
		assert.True(t, summary.Results[1].Succeeded())
		assert.Equal(t, "Done", singleOutcome(t, sink, "good").String())
		assert.False(t, singleOutcome(t, sink, "bad").Succeeded())
		assert.False(t, summary.OK())
	}
}

func TestDriver_JobsBoundConcurrency(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	logFile := env.Path("events.log")
	hook := fmt.Sprintf("echo start >> %q; sleep 0.05; echo end >> %q", logFile, logFile)
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"a": {Before: []string{hook}},
		"b": {Before: []string{"exit 2"}},
		"c": {Before: []string{hook}},
		"d": {Before: []string{hook}},
	}}

	summary := newDriver(1).Run(cfg, types.InstallOptions{}, testutil.NewRecordingSink())

	require.Len(t, summary.Results, 4)
	require.Len(t, summary.Failed(), 1)
	assert.Equal(t, "b", summary.Failed()[0].Name)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "end", "start", "end", "start", "end"},
		strings.Fields(string(data)), "one item at a time with a single job")
}

func TestDriver_SkipHooks(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "a"})
	before, beforeMarker := env.MarkerHook("before")
	after, afterMarker := env.MarkerHook("after")
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"item": {
			Mappings: []string{"./a.txt:./b.txt"},
			Before:   []string{before},
			After:    []string{after},
		},
	}}

	sink := testutil.NewRecordingSink()
	summary := newDriver(0).Run(cfg, types.InstallOptions{SkipHooks: true}, sink)

	require.True(t, summary.OK())
	_, err := os.Readlink(env.Path("b.txt"))
	assert.NoError(t, err)
	assert.NoFileExists(t, beforeMarker)
	assert.NoFileExists(t, afterMarker)
	assert.Equal(t, []string{
		"Running Pre-Install hook: " + before,
		"linking: ./a.txt -> ./b.txt",
		"Running Post-Install hook: " + after,
	}, sink.Get("item").StepStrings())
}

func TestDriver_InvalidSelection(t *testing.T) {
	testutil.NewTestEnvironment(t)
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"zsh": {},
		"git": {},
	}}

	sink := testutil.NewRecordingSink()
	summary := newDriver(0).Run(cfg, types.InstallOptions{
		SelectedItems: []string{"zsh", "nope", "zsh", "other"},
	}, sink)

	require.Error(t, summary.Invalid)
	assert.True(t, errors.IsErrorCode(summary.Invalid, errors.ErrInvalidItem))
	assert.Equal(t, []string{"nope", "other"}, install.InvalidItems(summary.Invalid))
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "zsh", summary.Results[0].Name)
	assert.True(t, summary.Results[0].Succeeded())
	assert.Equal(t, []string{"zsh"}, sink.Items())
	assert.False(t, summary.OK())
}

func TestDriver_EmptySelectionInstallsAll(t *testing.T) {
	testutil.NewTestEnvironment(t)
	cfg := &types.Config{Version: 1, Items: map[string]types.ConfigItem{
		"zsh":  {},
		"git":  {},
		"nvim": {},
	}}

	sink := testutil.NewRecordingSink()
	summary := newDriver(2).Run(cfg, types.InstallOptions{}, sink)

	require.True(t, summary.OK())
	assert.Equal(t, []string{"git", "nvim", "zsh"}, sink.Items())
}

func TestDriver_NilConfig(t *testing.T) {
	summary := newDriver(0).Run(nil, types.InstallOptions{}, nil)
	assert.True(t, errors.IsErrorCode(summary.Invalid, errors.ErrInvalidInput))
	assert.Empty(t, summary.Results)
}

func TestNewDriver_DefaultJobs(t *testing.T) {
	assert.Positive(t, newDriver(0).Jobs())
	assert.Equal(t, 3, newDriver(3).Jobs())
}
