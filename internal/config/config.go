package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	DatabasePath   string        `yaml:"database_path"`
	JWTSecret      string        `yaml:"jwt_secret"`
	PasswordSalt   string        `yaml:"password_salt"`
	TokenDuration  time.Duration `yaml:"token_duration"`
	APITimeout     time.Duration `yaml:"timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Environment    string        `yaml:"environment"`
}

// LoadConfig reads environment variables and, when path is non-empty, a
// YAML file overriding them. Validate decides what is fatal.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("PORTFOLIO_ADDR", ":5000"),
		DatabasePath:  os.Getenv("PORTFOLIO_DATABASE_PATH"),
		JWTSecret:     os.Getenv("PORTFOLIO_JWT_SECRET"),
		PasswordSalt:  os.Getenv("PORTFOLIO_PASSWORD_SALT"),
		TokenDuration: 2 * time.Hour,
		APITimeout:    15 * time.Second,
		Environment:   getEnv("PORTFOLIO_ENV", "development"),
	}

	if origins := os.Getenv("PORTFOLIO_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		// local frontend dev servers, loopback spelled both ways
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate enforces the fatal startup conditions: the server refuses to
// come up without a store location, a signing secret and a hash salt.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required (set PORTFOLIO_DATABASE_PATH)")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required (set PORTFOLIO_JWT_SECRET)")
	}
	if c.PasswordSalt == "" {
		return fmt.Errorf("password_salt is required (set PORTFOLIO_PASSWORD_SALT)")
	}
	if c.TokenDuration <= 0 {
		c.TokenDuration = 2 * time.Hour
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 15 * time.Second
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
