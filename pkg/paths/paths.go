package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dolink/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for dolink-specific files
	AppDirName = "dolink"

	// DefaultConfigPath is where the dotfiles configuration is looked up
	// when neither a flag nor a setting names one
	DefaultConfigPath = "~/.dotfiles/config.toml"

	// SettingsFileName is the name of the tool settings file
	SettingsFileName = "settings.toml"
)

// ExpandHome expands a leading ~ or ~/ to the value of HOME.
// Paths without the shorthand are returned untouched and never require HOME.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir := os.Getenv(EnvHome)
	if homeDir == "" {
		return "", errors.New(errors.ErrHomeNotSet, "cannot expand ~: HOME is not set").
			WithDetail("path", path)
	}

	if path == "~" {
		return homeDir, nil
	}
	return homeDir + path[1:], nil
}

// Resolve turns raw into an absolute, normalized path without consulting
// the filesystem, so it works for destinations that do not exist yet.
//
// Relative paths are anchored at the current working directory. "." segments
// are dropped and ".." removes the previous segment; a ".." with nothing left
// to remove fails with ErrInvalidPath rather than being clamped at the root.
func Resolve(raw string) (string, error) {
	if raw == "" {
		return "", errors.New(errors.ErrInvalidPath, "empty path")
	}

	expanded, err := ExpandHome(raw)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(expanded) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidPath, "failed to get current directory")
		}
		// Joined by hand: filepath.Join would clean away a leading "..".
		expanded = cwd + string(filepath.Separator) + expanded
	}

	return fold(expanded, raw)
}

// fold normalizes the segments of an absolute path.
func fold(abs, raw string) (string, error) {
	volume := filepath.VolumeName(abs)
	segments := strings.FieldsFunc(abs[len(volume):], isSeparator)

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case ".":
		case "..":
			if len(parts) == 0 {
				return "", errors.Newf(errors.ErrInvalidPath, "invalid path: %s", raw).
					WithDetail("path", raw)
			}
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, segment)
		}
	}

	sep := string(filepath.Separator)
	return volume + sep + strings.Join(parts, sep), nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}

// Canonicalize resolves an existing path: home is expanded, the result made
// absolute and symlinks evaluated. Unlike Resolve, the path must exist.
func Canonicalize(raw string) (string, error) {
	if raw == "" {
		return "", errors.New(errors.ErrInvalidPath, "empty path")
	}

	expanded, err := ExpandHome(raw)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "failed to get absolute path for %s", raw)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot access %s", raw).
			WithDetail("path", raw)
	}
	return resolved, nil
}

// StateDir returns dolink's XDG state directory, home of the log file
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// SettingsFile returns the path of the optional tool settings file
func SettingsFile() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, SettingsFileName)
}
