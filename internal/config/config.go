package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"LORD_ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LORD_LOG_LEVEL"   envDefault:"warn"`
	ConfigPath  string `env:"LORD_CONFIG"`
	Splash      bool   `env:"LORD_SPLASH"      envDefault:"true"`

	LogLevel slog.Level
}

// Identity is the read-only environment used to name the character and to
// locate per-user files.
type Identity struct {
	Hostname string `env:"HOSTNAME"`
	Host     string `env:"HOST"`
	User     string `env:"USER"`
	Username string `env:"USERNAME"`
	Home     string `env:"HOME"`
}

// NameCandidates lists identity values in the order they are tried for a display name.
func (id Identity) NameCandidates() []string {
	return []string{id.Hostname, id.Host, id.User, id.Username}
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	return &cfg, nil
}

func LoadIdentity() (Identity, error) {
	var id Identity
	if err := env.Parse(&id); err != nil {
		return Identity{}, fmt.Errorf("parse identity env: %w", err)
	}
	return id, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
