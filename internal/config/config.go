// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token   string `yaml:"token"`
	Mode    string `yaml:"mode"`    // polling | noop
	Workers int    `yaml:"workers"` // polling workers
}

type WeatherConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Units   string        `yaml:"units"` // metric | imperial
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type OpsConfig struct {
	Port int `yaml:"port"` // /health and /metrics listener
}

type Config struct {
	Bot     BotConfig     `yaml:"bot"`
	Weather WeatherConfig `yaml:"weather"`
	Log     LogConfig     `yaml:"log"`
	Ops     OpsConfig     `yaml:"ops"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML file at path and applies environment
// overrides. TELEGRAM_BOT_TOKEN and OPENWEATHER_API_KEY always win over
// the file so the bot can run with no config file beyond the defaults.
// A .env file is honored when present (godotenv, best-effort).
func LoadConfig(path string, dev bool) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only setup is fine
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}

	// defaults
	if cfg.Bot.Mode == "" {
		cfg.Bot.Mode = "polling"
	}
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 4
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Weather.Units == "" {
		cfg.Weather.Units = "metric"
	}
	if cfg.Weather.Timeout <= 0 {
		cfg.Weather.Timeout = 12 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Ops.Port == 0 {
		cfg.Ops.Port = 8081
	}

	// Minimal validation. Noop mode talks to no Telegram, so the token
	// is only needed when actually polling.
	if cfg.Bot.Token == "" && strings.ToLower(cfg.Bot.Mode) == "polling" {
		return nil, errors.New("bot.token is required (or set TELEGRAM_BOT_TOKEN)")
	}
	if cfg.Weather.APIKey == "" {
		return nil, errors.New("weather.api_key is required (or set OPENWEATHER_API_KEY)")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
