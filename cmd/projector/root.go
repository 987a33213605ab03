package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"value-projector/internal/layout"
	"value-projector/profile"
)

const envPrefix = "PROJECTOR"

// app carries the state shared by every command.
type app struct {
	cfgFile string
	verbose bool

	v      *viper.Viper
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.DiscardHandler),
		stdout: stdout,
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "projector",
		Short: "Project sample values to CSV columns and back",
		Long: `projector renders domain values as CSV cells through named bindings.
Each column of a layout file picks a binding and the profile it runs under,
so the same value can appear as a label, a Japanese label and a numeric code.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.setupLogging()
			return a.initConfig()
		},
		SilenceUsage: true,
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.projector.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.String("locale", "", "BCP 47 locale choosing the profile, e.g. ja-JP")
	flags.String("profile", "", "profile for columns that do not name one")
	_ = a.v.BindPFlag("locale", flags.Lookup("locale"))
	_ = a.v.BindPFlag("profile", flags.Lookup("profile"))

	rootCmd.AddCommand(newExportCmd(a), newImportCmd(a), newVersionCmd(a))

	return rootCmd
}

// initConfig loads configuration from the config file and environment.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}

		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".projector")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	a.logger.Debug("using config file", "file", a.v.ConfigFileUsed())

	return nil
}

func (a *app) setupLogging() {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// loadLayout reads the layout and applies the profile chosen by flags, env or
// config: an explicit profile wins over a locale.
func (a *app) loadLayout(path string) (*layout.Layout, error) {
	l, err := layout.LoadFile(path)
	if err != nil {
		return nil, err
	}

	switch name, locale := a.v.GetString("profile"), a.v.GetString("locale"); {
	case name != "":
		l.Profile = name
	case locale != "":
		l.Profile = profile.Match(locale).Name
		a.logger.Debug("profile resolved from locale", "locale", locale, "profile", l.Profile)
	}

	return l, nil
}
