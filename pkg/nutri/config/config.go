// Package config loads nutri settings from a YAML file and NUTRI_*
// environment variables, and builds the engine components they describe.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cognicore/nutri/pkg/nutri/internalerr"
	"github.com/cognicore/nutri/pkg/nutri/labels"
	"github.com/cognicore/nutri/pkg/nutri/units"
)

// Settings is the full configuration.
type Settings struct {
	Catalog  CatalogSettings    `mapstructure:"catalog"`
	Match    MatchSettings      `mapstructure:"match"`
	Units    map[string]float64 `mapstructure:"units"`
	Labels   labels.Thresholds  `mapstructure:"labels"`
	Log      LogSettings        `mapstructure:"log"`
	Servings int                `mapstructure:"servings"`
}

// CatalogSettings selects where foods come from. At most one of Path and
// DB may be set; with neither, the built-in catalog is used.
type CatalogSettings struct {
	Path string `mapstructure:"path"` // YAML catalog file
	DB   string `mapstructure:"db"`   // SQLite catalog database
}

// MatchSettings configures food matching.
type MatchSettings struct {
	WholeWord bool `mapstructure:"whole_word"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads settings from path, or from nutri.yaml in the working directory
// or ~/.config/nutri when path is empty. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("nutri")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/nutri")
	}

	v.SetEnvPrefix("NUTRI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w: %w", err, internalerr.ErrInvalidConfig)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the settings used when no file or environment is present.
func Default() *Settings {
	return &Settings{
		Labels:   labels.DefaultThresholds(),
		Log:      LogSettings{Level: "info", Format: "console"},
		Servings: 1,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("catalog.db", d.Catalog.DB)
	v.SetDefault("match.whole_word", d.Match.WholeWord)
	v.SetDefault("labels.min_protein_fraction", d.Labels.MinProteinFraction)
	v.SetDefault("labels.max_carb_fraction", d.Labels.MaxCarbFraction)
	v.SetDefault("labels.max_fat_fraction", d.Labels.MaxFatFraction)
	v.SetDefault("labels.min_fiber_grams", d.Labels.MinFiberGrams)
	v.SetDefault("labels.max_sodium_mg", d.Labels.MaxSodiumMg)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("servings", d.Servings)
}

// Validate checks settings that can be checked without touching the
// filesystem.
func (s *Settings) Validate() error {
	if s.Catalog.Path != "" && s.Catalog.DB != "" {
		return fmt.Errorf("catalog.path and catalog.db are mutually exclusive: %w", internalerr.ErrInvalidConfig)
	}
	if s.Servings < 1 {
		return fmt.Errorf("servings must be at least 1, got %d: %w", s.Servings, internalerr.ErrInvalidConfig)
	}
	if _, err := units.DefaultTable().WithOverrides(s.Units); err != nil {
		return err
	}
	return s.Labels.Validate()
}
