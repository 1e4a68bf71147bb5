package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/shardcfg/internal/paths"
)

// EnvPrefix prefixes the environment variables overriding settings.
const EnvPrefix = "SHARDCFG"

// Setting keys.
const (
	KeyVersion      = "version"
	KeyDataConfig   = "data_config"
	KeyDiffFormat   = "diff_format"
	KeyOutputFormat = "output_format"
)

// Keys lists every setting in display order.
var Keys = []string{KeyVersion, KeyDataConfig, KeyDiffFormat, KeyOutputFormat}

// Config represents the settings file.
type Config struct {
	Version      int    `mapstructure:"version" yaml:"version"`
	DataConfig   string `mapstructure:"data_config" yaml:"data_config"`
	DiffFormat   string `mapstructure:"diff_format" yaml:"diff_format"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
}

// Init registers search paths, environment binding, and defaults with the
// global Viper instance.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeyDataConfig, "")
	viper.SetDefault(KeyDiffFormat, "tree")
	viper.SetDefault(KeyOutputFormat, "yaml")
}

// Load reads the settings file. With an empty path the search paths are
// tried and a missing file means defaults; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "invalid config")
	}

	return &cfg, nil
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{Version: 1, DiffFormat: "tree", OutputFormat: "yaml"}
}
