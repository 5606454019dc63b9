package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the eventdesk CLI.
type Config struct {
	DatabaseDSN      string
	LogLevel         string
	Timezone         string
	CredentialScheme string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "eventdesk.db"
	c.LogLevel = "info"
	c.Timezone = "UTC"
	c.CredentialScheme = "argon2id"
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadConfig builds a Config from defaults, environment, config file and
// os.Args, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
