package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CINECATALOG_DATASET_PATH
const EnvPrefix = "CINECATALOG"

var AppConfig Config

// LoadConfig reads app-config.yaml from the working directory. A missing
// file is fine; defaults and environment variables still apply.
func LoadConfig() (*Config, error) {
	cfg, err := LoadFrom(".")
	if err != nil {
		return nil, err
	}
	AppConfig = *cfg

	log.Info().Msg("Configuration loaded successfully")
	return &AppConfig, nil
}

// LoadFrom is LoadConfig with an explicit search directory.
func LoadFrom(dir string) (*Config, error) {
	v, err := newViper(dir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &cfg, nil
}

func newViper(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("app-config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)

	v.SetDefault("dataset.path", "movie_database.csv")
	v.SetDefault("dataset.format", "auto")
	v.SetDefault("dataset.table", "movies")

	v.SetDefault("browse.default_sort", "title")
	v.SetDefault("browse.random_count", 5)
	v.SetDefault("browse.random_max", 50)
	v.SetDefault("browse.columns", 5)
	v.SetDefault("browse.title_max_len", 25)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}
