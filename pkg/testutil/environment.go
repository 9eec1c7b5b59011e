// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolated HOME/XDG/dotfiles directories for install tests

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dolink/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name WriteConfig writes to inside Root
const ConfigFileName = "config.toml"

// TestEnvironment is an isolated dotfiles setup on the real filesystem
type TestEnvironment struct {
	// Root holds the dotfiles and is the working directory
	Root string
	// HomeDir is exported as HOME
	HomeDir string
	// StateDir and ConfigDir are exported as XDG_STATE_HOME / XDG_CONFIG_HOME
	StateDir  string
	ConfigDir string

	t *testing.T
}

// NewTestEnvironment creates the directories, points HOME and the XDG
// variables at them, uses /bin/sh for hooks and changes into Root.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		Root:      filepath.Join(base, "dotfiles"),
		HomeDir:   filepath.Join(base, "home"),
		StateDir:  filepath.Join(base, "state"),
		ConfigDir: filepath.Join(base, "config"),
		t:         t,
	}

	for _, dir := range []string{env.Root, env.HomeDir, env.StateDir, env.ConfigDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("SHELL", "/bin/sh")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	t.Chdir(env.Root)
	return env
}

// Path returns rel inside Root
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, rel)
}

// HomePath returns rel inside HomeDir
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// FileTree represents a directory structure: string values are file
// contents, FileTree values are subdirectories.
type FileTree map[string]interface{}

// WithFileTree creates tree under Root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.Root, tree)
}

func createFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := os.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// WriteConfig writes a version 1 TOML configuration with items to Root and
// returns its path.
func (env *TestEnvironment) WriteConfig(items map[string]types.ConfigItem) string {
	env.t.Helper()

	data, err := toml.Marshal(struct {
		Version  int                         `toml:"version"`
		Dotfiles map[string]types.ConfigItem `toml:"dotfiles"`
	}{Version: 1, Dotfiles: items})
	if err != nil {
		env.t.Fatalf("Failed to marshal config: %v", err)
	}

	path := env.Path(ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		env.t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// MarkerHook returns a hook that creates a marker file named name inside
// the environment, together with the marker's path.
func (env *TestEnvironment) MarkerHook(name string) (hook, marker string) {
	marker = filepath.Join(filepath.Dir(env.Root), "markers", name)
	return fmt.Sprintf("mkdir -p '%s' && touch '%s'", filepath.Dir(marker), marker), marker
}
