package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultFallbackFrom = "Tryouts <onboarding@resend.dev>"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"3000"`
	Environment    string        `env:"APP_ENV"`
	NodeEnv        string        `env:"NODE_ENV"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	StaticDir      string        `env:"STATIC_DIR"`
	BodyLimitKB    int           `env:"BODY_LIMIT_KB" envDefault:"64"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	StatsInterval  time.Duration `env:"STATS_INTERVAL" envDefault:"1h"`

	Mail MailConfig
}

// MailConfig is the delivery configuration. Real delivery only happens when
// APIKey, From and To are all set.
type MailConfig struct {
	APIKey       string   `env:"RESEND_API_KEY"`
	From         string   `env:"MAIL_FROM"`
	To           []string `env:"MAIL_TO" envSeparator:","`
	FallbackFrom string   `env:"MAIL_FALLBACK_FROM" envDefault:"Tryouts <onboarding@resend.dev>"`
}

// Parse builds a Config from the current process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Environment == "" {
		c.Environment = c.NodeEnv
	}
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}

	c.AllowedOrigins = trimAll(c.AllowedOrigins)
	c.Mail.To = trimAll(c.Mail.To)
	c.Mail.APIKey = strings.TrimSpace(c.Mail.APIKey)
	c.Mail.From = strings.TrimSpace(c.Mail.From)
	if strings.TrimSpace(c.Mail.FallbackFrom) == "" {
		c.Mail.FallbackFrom = DefaultFallbackFrom
	}
	if c.BodyLimitKB <= 0 {
		c.BodyLimitKB = 64
	}
}

// IsProduction reports whether simulated sends must be disabled.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Enabled reports whether all three delivery settings are present.
func (m MailConfig) Enabled() bool {
	return m.APIKey != "" && m.From != "" && len(m.To) > 0
}

// ListenAddr returns the address for app.Listen.
func (c *Config) ListenAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// HasStaticDir reports whether STATIC_DIR points at an existing directory.
func (c *Config) HasStaticDir() bool {
	if c.StaticDir == "" {
		return false
	}
	info, err := os.Stat(c.StaticDir)
	return err == nil && info.IsDir()
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
