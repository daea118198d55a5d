package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/except"
	"github.com/deepnoodle-ai/except/engine"
	"github.com/deepnoodle-ai/except/errors"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings is the resolved configuration shared by all commands.
type settings struct {
	MaxDepth int  `mapstructure:"max-depth"`
	Verbose  bool `mapstructure:"verbose"`
	NoColor  bool `mapstructure:"no-color"`

	// Taxonomy maps child kind names to parent kind names. When set it
	// replaces the default taxonomy; an empty parent (or "none") declares a
	// root kind.
	Taxonomy map[string]string `mapstructure:"taxonomy"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cfg := &settings{}

	root := &cobra.Command{
		Use:           "except",
		Short:         "Explore structured exception handling",
		Long:          "Throw, catch and rethrow exceptions through nested protected regions and inspect the exception taxonomy.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSettings(v, cmd, cfg); err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.Int("max-depth", engine.DefaultMaxDepth, "Maximum number of nested protected regions")
	flags.BoolP("verbose", "v", false, "Log every engine event to stderr")
	flags.Bool("no-color", false, "Disable colored output")

	root.AddCommand(
		newKindsCmd(cfg),
		newDemoCmd(cfg),
		newThrowCmd(cfg),
	)
	return root
}

// loadSettings resolves flags, EXCEPT_* environment variables and the
// optional config file, in that order of precedence.
func loadSettings(v *viper.Viper, cmd *cobra.Command, cfg *settings) error {
	v.SetEnvPrefix("EXCEPT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return v.Unmarshal(cfg)
}

// runOptions builds the engine options for the resolved settings.
func (s *settings) runOptions(stderr io.Writer) ([]except.Option, error) {
	tax, err := s.taxonomy()
	if err != nil {
		return nil, err
	}
	opts := []except.Option{except.WithMaxDepth(s.MaxDepth), except.WithTaxonomy(tax)}
	if s.Verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: s.NoColor}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts = append(opts, except.WithLogger(logger), except.WithTrace())
	}
	return opts, nil
}

// taxonomy builds the configured taxonomy, reporting every bad entry at once.
func (s *settings) taxonomy() (*exception.Taxonomy, error) {
	if len(s.Taxonomy) == 0 {
		return exception.DefaultTaxonomy(), nil
	}

	var problems errors.TaxonomyError
	parents := make(map[exception.Kind]exception.Kind, len(s.Taxonomy))
	for childName, parentName := range s.Taxonomy {
		child, ok := exception.ParseKind(childName)
		if !ok || child == exception.Any {
			problems.Add(errors.NewDiagnostic(errors.E1002,
				fmt.Sprintf("unknown kind %q in taxonomy", childName),
				errors.SuggestKind(childName, false)))
			continue
		}
		parent := exception.None
		if name := exception.Normalize(parentName); name != "" && name != "none" {
			if parent, ok = exception.ParseKind(name); !ok {
				problems.Add(errors.NewDiagnostic(errors.E1002,
					fmt.Sprintf("unknown parent kind %q for %s", parentName, child),
					errors.SuggestKind(parentName, false)))
				continue
			}
		}
		parents[child] = parent
	}

	tax, err := exception.NewTaxonomy(parents)
	problems.Add(err)
	if err := problems.ErrorOrNil(); err != nil {
		return nil, err
	}
	return tax, nil
}
