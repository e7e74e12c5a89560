package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the tool defaults. Values come from, in order of priority,
// STRALG_* environment variables, a .stralg.yaml in the working directory or
// the home directory, and the built-in defaults.
type Config struct {
	// Algorithm is the default search algorithm: naive, border, kmp or bmh.
	Algorithm string `mapstructure:"algorithm"`
	// Color enables styled output.
	Color bool `mapstructure:"color"`
	// Workers bounds search concurrency; 0 means one worker per CPU.
	Workers int `mapstructure:"workers"`
}

// LoadConfig reads the configuration. A missing config file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("algorithm", "kmp")
	v.SetDefault("color", true)
	v.SetDefault("workers", 0)

	v.SetConfigName(".stralg")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("STRALG")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "unable to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unable to parse config")
	}
	return cfg, nil
}
