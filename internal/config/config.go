package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-engine/internal/util"
)

// Config provides table configuration for the betting engine's host
type Config struct {
	loaded        bool
	SmallBlind    int64 `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int64 `yaml:"bigBlind" envconfig:"big_blind"`
	Ante          int64 `yaml:"ante" envconfig:"ante"`
	StartingStack int64 `yaml:"startingStack" envconfig:"starting_stack"`
	Seed          int64 `yaml:"seed" envconfig:"seed"`
	Log           struct {
		Level string `yaml:"level" envconfig:"level"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// defaults and environment overrides still apply.
func Load() error {
	config = Config{
		SmallBlind:    10,
		BigBlind:      20,
		StartingStack: 1000,
	}

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	if err := config.validate(); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
