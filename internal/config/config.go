// Package config loads the run configuration: directories, calendar geometry
// and output toggles. Values come from an optional scheduling.yaml (or any
// format viper reads) in the working directory, falling back to defaults that
// match a Monday-to-Friday, 8:00-20:00 week.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"scheduling/internal/model"
)

type Config struct {
	SubjectsDir string `mapstructure:"subjects_dir"`
	OutputDir   string `mapstructure:"output_dir"`

	Days      int `mapstructure:"days"`
	StartHour int `mapstructure:"start_hour"`
	EndHour   int `mapstructure:"end_hour"`

	Text  bool `mapstructure:"text"`
	ASCII bool `mapstructure:"ascii"`
	PDF   bool `mapstructure:"pdf"`
}

// Geometry converts the configured calendar bounds into the solver's grid
// geometry.
func (config Config) Geometry() model.WeekGeometry {
	return model.WeekGeometry{
		Days:      config.Days,
		StartHour: config.StartHour,
		EndHour:   config.EndHour,
	}
}

// Load reads the configuration file at path, or searches the working
// directory for "scheduling" when path is empty. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	loader := viper.New()
	loader.SetDefault("subjects_dir", "subjects")
	loader.SetDefault("output_dir", "schedules")
	loader.SetDefault("days", 5)
	loader.SetDefault("start_hour", 8)
	loader.SetDefault("end_hour", 20)
	loader.SetDefault("text", false)
	loader.SetDefault("ascii", false)
	loader.SetDefault("pdf", true)

	if path != "" {
		loader.SetConfigFile(path)
	} else {
		loader.SetConfigName("scheduling")
		loader.AddConfigPath(".")
	}

	if err := loader.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cannot read configuration: %w", err)
		}
	}

	var config Config
	if err := loader.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("cannot decode configuration: %w", err)
	}
	if err := config.check(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config Config) check() error {
	if config.Days < 1 || config.Days > 7 {
		return fmt.Errorf("days must be between 1 and 7, got %d", config.Days)
	}
	if config.StartHour < 0 || config.EndHour > 24 || config.StartHour >= config.EndHour {
		return fmt.Errorf("invalid hour range %d-%d", config.StartHour, config.EndHour)
	}
	return nil
}
