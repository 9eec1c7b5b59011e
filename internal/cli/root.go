// Package cli wires dolink's cobra commands to the install engine.
package cli

import (
	"github.com/arthur-debert/dolink/internal/version"
	"github.com/arthur-debert/dolink/pkg/config"
	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/paths"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/arthur-debert/dolink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions are the global flags plus the settings they fall back to
type rootOptions struct {
	verbosity  int
	configPath string
	format     string
	settings   config.Settings
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "dolink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			settings, err := config.LoadSettings()
			if err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadSettings)
			}
			opts.settings = settings
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// configFile is the --config flag, else the settings, canonicalized
func (o *rootOptions) configFile() (string, error) {
	raw := o.configPath
	if raw == "" {
		raw = o.settings.ConfigPath
	}
	if raw == "" {
		raw = paths.DefaultConfigPath
	}

	path, err := paths.Canonicalize(raw)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad, MsgErrResolveConfig, raw).
			WithDetail("path", raw)
	}
	return path, nil
}

// loadConfig resolves and loads the configuration file
func (o *rootOptions) loadConfig() (*types.Config, error) {
	path, err := o.configFile()
	if err != nil {
		return nil, err
	}
	log.Info().Str("config", path).Msg("Loading configuration")
	return config.LoadConfig(path)
}

func (o *rootOptions) outputFormat() (ui.Format, error) {
	return ui.ParseFormat(o.format)
}
