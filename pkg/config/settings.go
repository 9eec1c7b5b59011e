package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables that override settings
const EnvPrefix = "DOLINK_"

// Settings are the tool's own preferences, as opposed to the dotfiles
// configuration it installs.
type Settings struct {
	// ConfigPath is the default configuration file path
	ConfigPath string `koanf:"config"`
	// Jobs bounds how many items are installed at once
	Jobs int `koanf:"jobs"`
	// Shell runs hooks; empty means $SHELL
	Shell string `koanf:"shell"`
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	return Settings{
		ConfigPath: paths.DefaultConfigPath,
		Jobs:       runtime.NumCPU(),
	}
}

// LoadSettings merges defaults, the XDG settings file and DOLINK_*
// environment variables, later sources winning.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(paths.SettingsFile())
}

// LoadSettingsFrom is LoadSettings with an explicit settings file. A missing
// file is not an error.
func LoadSettingsFrom(settingsFile string) (Settings, error) {
	k := koanf.New(".")

	defaults := DefaultSettings()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"config": defaults.ConfigPath,
		"jobs":   defaults.Jobs,
		"shell":  defaults.Shell,
	}, "."), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	if settingsFile != "" {
		if _, err := os.Stat(settingsFile); err == nil {
			if err := k.Load(file.Provider(settingsFile), toml.Parser()); err != nil {
				return Settings{}, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load settings from %s", settingsFile).
					WithDetail("path", settingsFile)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	if settings.Jobs < 1 {
		logger := logging.GetLogger("config")
		logger.Warn().Int("jobs", settings.Jobs).Msg("Ignoring non-positive jobs setting")
		settings.Jobs = defaults.Jobs
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("config", settings.ConfigPath).
		Int("jobs", settings.Jobs).
		Str("shell", settings.Shell).
		Msg("Settings loaded")
	return settings, nil
}
