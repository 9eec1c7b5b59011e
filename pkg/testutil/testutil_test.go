// pkg/testutil/testutil_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp directories
// PURPOSE: Test the environment and recording helpers themselves

package testutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dolink/pkg/paths"
	"github.com/arthur-debert/dolink/pkg/testutil"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.Equal(t, filepath.Join(env.StateDir, paths.AppDirName), paths.StateDir())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	resolvedRoot, err := filepath.EvalSymlinks(env.Root)
	require.NoError(t, err)
	resolvedCwd, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, resolvedRoot, resolvedCwd)

	env.WithFileTree(testutil.FileTree{
		"a.txt": "a",
		"nested": testutil.FileTree{
			"b.txt": "b",
		},
	})
	assert.FileExists(t, env.Path("a.txt"))
	assert.FileExists(t, env.Path("nested/b.txt"))
}

func TestWriteConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	path := env.WriteConfig(map[string]types.ConfigItem{
		"zsh": {Mappings: []string{"./zshrc:~/.zshrc"}},
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "./zshrc:~/.zshrc")
}

func TestRecordingSink(t *testing.T) {
	sink := testutil.NewRecordingSink()

	r := sink.Reporter("zsh")
	r.Step(types.LinkStep("/a", "/b"))
	r.Finish(types.Outcome{Err: errors.New("boom")})

	got := sink.Get("zsh")
	require.NotNil(t, got)
	assert.Equal(t, []string{"linking: /a -> /b"}, got.StepStrings())
	require.Len(t, got.Outcomes(), 1)
	assert.Equal(t, "Failed: boom", got.Outcomes()[0].String())
	assert.Equal(t, []string{"zsh"}, sink.Items())
	assert.Nil(t, sink.Get("git"))
}
