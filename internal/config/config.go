package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Style string `yaml:"style" env:"BOARD_STYLE" env-default:"ascii"`
	Color bool   `yaml:"color" env:"BOARD_COLOR" env-default:"true"`
}

// MustLoad - loads the configuration from the given YAML file. A missing
// file is fine: the CLI then runs on environment variables and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
