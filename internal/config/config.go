package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/taskdeck/taskdeck/internal/routes"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	SessionLifetime time.Duration

	// CORSOrigins are the frontend origins allowed to call the API.
	CORSOrigins []string

	// GuardSkip overrides the prefixes excluded from the route guard
	// (API routes, static assets, favicon). Empty means the defaults.
	GuardSkip []string
}

// Load reads config from environment (TASKDECK_ prefix) and optional taskdeck.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TASKDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("taskdeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("session.lifetime", "720h")
	v.SetDefault("cors.origins", []string{"http://localhost:3000"})

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.CORSOrigins = v.GetStringSlice("cors.origins")
	cfg.GuardSkip = v.GetStringSlice("guard.skip")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid TASKDECK_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("TASKDECK_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("TASKDECK_DB_DSN is required")
	}

	return cfg, nil
}

// Policy builds the routing policy from config: the protected and public
// lists are fixed, only the guard skip filter is operator-tunable.
func (c *Config) Policy() routes.Policy {
	p := routes.Default()
	if len(c.GuardSkip) > 0 {
		p.Skip = c.GuardSkip
	}
	return p
}
