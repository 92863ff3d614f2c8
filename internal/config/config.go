package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Keys     Keys    `yaml:"keys"`
	Display  Display `yaml:"display"`
	Redis    Redis   `yaml:"redis"`
}

// Keys lists the key names bound to every input. Names follow the terminal key notation
// ("up", "ctrl+c", "k"); "space" stands for the space bar.
type Keys struct {
	Up      []string `yaml:"up" env:"TICTACTOE_KEY_UP" env-separator:"," env-default:"up"`
	Down    []string `yaml:"down" env:"TICTACTOE_KEY_DOWN" env-separator:"," env-default:"down"`
	Left    []string `yaml:"left" env:"TICTACTOE_KEY_LEFT" env-separator:"," env-default:"left"`
	Right   []string `yaml:"right" env:"TICTACTOE_KEY_RIGHT" env-separator:"," env-default:"right"`
	Confirm []string `yaml:"confirm" env:"TICTACTOE_KEY_CONFIRM" env-separator:"," env-default:"space"`
	Quit    []string `yaml:"quit" env:"TICTACTOE_KEY_QUIT" env-separator:"," env-default:"ctrl+c"`
}

// Display switches default to off: cleanenv replaces zero values with env-default.
type Display struct {
	NoColor  bool `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	HideHelp bool `yaml:"hide-help" env:"TICTACTOE_HIDE_HELP"`
	Inline   bool `yaml:"inline" env:"TICTACTOE_INLINE"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:outcomes"`
}

// Load - reads the yaml file at path when it exists, environment variables override it.
// Without a file the configuration comes from the environment and defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
