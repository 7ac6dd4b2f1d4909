// Package config loads the application configuration from a YAML file,
// applies environment overrides and validates the result.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"

	"gostyles/components/navbar"
	"gostyles/styles"
)

// Environment variables that override file values.
const (
	EnvAddress       = "GOSTYLES_ADDRESS"
	EnvLogLevel      = "GOSTYLES_LOG_LEVEL"
	EnvSessionSecret = "GOSTYLES_SESSION_SECRET"
)

// DevSecret signs session cookies when nothing else is configured.
const DevSecret = "development-only-secret-do-not-use-in-production"

// MinSecretLength is the shortest accepted session secret.
const MinSecretLength = 32

type Config struct {
	Server  Server  `yaml:"server"`
	Log     Log     `yaml:"log"`
	Session Session `yaml:"session"`
	Demo    Demo    `yaml:"demo"`
}

type Server struct {
	Address   string `yaml:"address" validate:"required"`
	Verbose   bool   `yaml:"verbose"`
	RateLimit int    `yaml:"rate_limit" validate:"gte=0"`
}

type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Session controls the signed session cookie and how long idle component
// instances are kept.
type Session struct {
	Secret  string        `yaml:"secret" validate:"min=32"`
	Cookie  string        `yaml:"cookie" validate:"required"`
	MaxIdle time.Duration `yaml:"max_idle" validate:"gte=0"`
}

// Demo holds the variants the demo page starts with.
type Demo struct {
	Palette styles.Palette `yaml:"palette" validate:"variant"`
	Style   styles.Style   `yaml:"style" validate:"variant"`
	Size    styles.Size    `yaml:"size" validate:"variant"`
	Fixed   navbar.Fixed   `yaml:"fixed" validate:"variant"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Server:  Server{Address: ":8000", RateLimit: 600},
		Log:     Log{Level: "info"},
		Session: Session{Secret: DevSecret, Cookie: "gostyles_session", MaxIdle: 30 * time.Minute},
		Demo:    Demo{Palette: styles.Standard, Style: styles.Regular, Size: styles.Medium, Fixed: navbar.Top},
	}
}

// UsesDevSecret reports whether session cookies are signed with DevSecret.
func (c Config) UsesDevSecret() bool { return c.Session.Secret == DevSecret }

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults. Environment overrides are applied before validation.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, serr.Wrap(err, "failed to read config file "+path)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, serr.Wrap(err, "failed to parse config file "+path)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddress); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvSessionSecret); v != "" {
		c.Session.Secret = v
	}
}

func (c Config) Validate() error {
	return styles.Validate("config", c)
}
