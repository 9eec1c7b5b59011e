package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration format version understood
const SupportedVersion = 1

// fileConfig is the on-disk shape of the configuration file
type fileConfig struct {
	Version  int                         `toml:"version" yaml:"version"`
	Dotfiles map[string]types.ConfigItem `toml:"dotfiles" yaml:"dotfiles"`
	D        map[string]types.ConfigItem `toml:"d" yaml:"d"`
}

// Format is a configuration file syntax
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the syntax from the file extension; anything that is not
// .yaml or .yml is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LoadConfig reads and validates the configuration file at path.
// Any error it returns is fatal for the run.
func LoadConfig(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		var dolinkErr *errors.DolinkError
		if stderrors.As(err, &dolinkErr) {
			dolinkErr.WithDetail("path", path)
		}
		return nil, err
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", path).
		Int("items", len(cfg.Items)).
		Msg("Configuration loaded")
	return cfg, nil
}

// Parse decodes configuration data in the given format. Unknown keys are
// rejected.
func Parse(data []byte, format Format) (*types.Config, error) {
	var raw fileConfig

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse YAML config")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse TOML config")
		}
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unknown config format %q", format)
	}

	if raw.Version != SupportedVersion {
		return nil, errors.Newf(errors.ErrConfigVersion,
			"unsupported config version %d (supported: %d)", raw.Version, SupportedVersion).
			WithDetail("version", raw.Version)
	}

	items := make(map[string]types.ConfigItem, len(raw.Dotfiles)+len(raw.D))
	for name, item := range raw.Dotfiles {
		items[name] = item
	}
	for name, item := range raw.D {
		if _, dup := items[name]; dup {
			return nil, errors.Newf(errors.ErrConfigParse,
				"item '%s' is defined under both 'dotfiles' and 'd'", name).
				WithDetail("item", name)
		}
		items[name] = item
	}

	return &types.Config{
		Version: raw.Version,
		Items:   items,
	}, nil
}
