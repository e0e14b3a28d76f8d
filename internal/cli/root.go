// Package cli implements the modern command line.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/modern/internal/config"
	"github.com/opencode-ai/modern/internal/logging"
	"github.com/opencode-ai/modern/internal/theme"
)

var (
	cfgFile        string
	logLevel       string
	logFormat      string
	modeFlag       string
	formatFlag     string
	nonInteractive bool
	noProgress     bool
	noColor        bool

	appConfig *config.Config

	// detectDark reports whether the terminal background is dark. Tests
	// replace it.
	detectDark = termenv.HasDarkBackground
)

var rootCmd = &cobra.Command{
	Use:   "modern",
	Short: "Resolve and preview the Modern widget styles",
	Long: `modern resolves the light and dark "Modern" widget styles for buttons,
containers, text inputs, toggles and text, prints them in several formats,
checks the resolver's contract and previews everything in a terminal gallery.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/modern/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.StringVar(&modeFlag, "mode", "", "appearance mode (light, dark, auto)")
	flags.StringVarP(&formatFlag, "format", "o", "", "output format (text, json, yaml)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail instead of launching interactive views")
	flags.BoolVar(&noProgress, "no-progress", false, "suppress progress output")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
}

// ignoreConfigErrors marks commands that must run even when the config file
// cannot be loaded, so init can repair it.
const ignoreConfigErrors = "ignore-config-errors"

func initConfig(cmd *cobra.Command) error {
	cfg, loadErr := config.Load(cfgFile)
	if loadErr != nil {
		if cmd.Annotations[ignoreConfigErrors] != "true" {
			return &PreflightError{
				Message:  loadErr.Error(),
				Hint:     "Fix the config file or point --config at a valid one",
				NextStep: "modern init --force",
				Err:      loadErr,
			}
		}
		cfg = config.Default()
	}

	if flagChanged(cmd, "mode") {
		cfg.Theme.Mode = modeFlag
	}
	if flagChanged(cmd, "format") {
		cfg.Output.Format = formatFlag
	}
	if flagChanged(cmd, "log-level") {
		cfg.Logging.Level = logLevel
	}
	if flagChanged(cmd, "log-format") {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Check the flag value",
			NextStep: "modern --help",
			Err:      err,
		}
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	}); err != nil {
		return err
	}

	appConfig = cfg
	logger := logging.Component("cli")
	if loadErr != nil {
		logger.Warn().Err(loadErr).Str("command", cmd.CommandPath()).Msg("ignoring unreadable config, using defaults")
	}
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config_file", cfg.File).
		Str("mode", cfg.Theme.Mode).
		Str("format", cfg.Output.Format).
		Msg("configuration loaded")
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// resolvedMode turns the configured mode into light or dark. "auto" asks
// the terminal, which only works when stdout is a terminal.
func resolvedMode() (theme.Mode, error) {
	probe := func() bool {
		if !hasTTY() {
			return false
		}
		return detectDark()
	}
	mode, err := GetConfig().Theme.ResolveMode(probe)
	if err != nil {
		return theme.Light, err
	}
	logger := logging.Component("cli")
	logger.Debug().Str("mode", mode.String()).Msg("mode resolved")
	return mode, nil
}

func outputFormat() string {
	return strings.ToLower(strings.TrimSpace(GetConfig().Output.Format))
}
