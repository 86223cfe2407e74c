// Package config loads the tool's settings from environment variables.
// Everything has a production default; the endpoint overrides exist mainly
// so tests can point the client at local servers.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration of the CLI.
type Config struct {
	SendVcURL   string        `env:"MLBB_SEND_VC_URL" envDefault:"https://api.mobilelegends.com/base/sendVc"`
	LoginURL    string        `env:"MLBB_LOGIN_URL" envDefault:"https://api.mobilelegends.com/base/login"`
	BaseInfoURL string        `env:"MLBB_BASE_INFO_URL" envDefault:"https://sg-api.mobilelegends.com/base/getBaseInfo"`
	HTTPTimeout time.Duration `env:"MLBB_HTTP_TIMEOUT" envDefault:"30s"`
	LogFile     string        `env:"MLBB_LOG_FILE" envDefault:"mlbb.log"`
	LogLevel    string        `env:"MLBB_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}
