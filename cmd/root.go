package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/afscreen/internal/application"
	"github.com/inovacc/afscreen/internal/cli"
	"github.com/inovacc/afscreen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is overridden at build time with -ldflags "-X".
var version = "0.1.0"

var (
	cfgFile   string
	logLevel  string
	logFormat string

	appConfig *config.Config
	logger    = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Generate batch structure-prediction payloads for screening",
	Long: `afscreen pairs a small set of screening chains with every target sequence
in a CSV file and writes the cross-product as batch-prediction job records,
split into files of at most 100 jobs.

Run 'afscreen' without arguments to be prompted for everything.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd.Flags(), cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			_, _ = fmt.Fprintln(os.Stderr, "\nAborted by user.")
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <config dir>/afscreen/config.ini)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}

// configPath returns the --config value or the default location.
func configPath() (string, error) {
	if cfgFile != "" {
		return expandPath(cfgFile)
	}

	return config.DefaultPath()
}

// initApp loads the configuration and builds the logger; flags override the
// file.
func initApp(flags *pflag.FlagSet, stderr io.Writer) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l

	logger.Debug("configuration loaded", "path", path)

	return nil
}

func newLogger(w io.Writer, section config.LogSection) (*slog.Logger, error) {
	level, err := config.ParseLevel(section.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(section.Format, config.FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// currentConfig returns the loaded configuration, or the defaults when the
// command ran without the root pre-run (tests).
func currentConfig() *config.Config {
	if appConfig == nil {
		cfg := config.Default()
		return &cfg
	}

	return appConfig
}
