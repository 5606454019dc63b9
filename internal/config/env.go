package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDSN              = "EVENTDESK_DSN"
	EnvLogLevel         = "EVENTDESK_LOG_LEVEL"
	EnvTimezone         = "EVENTDESK_TIMEZONE"
	EnvCredentialScheme = "EVENTDESK_CREDENTIAL_SCHEME"
)

// parseEnv overlays cfg with EVENTDESK_* variables. A .env file in the
// working directory is loaded first if present; variables already set in
// the process environment win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	overlay(&cfg.DatabaseDSN, os.Getenv(EnvDSN))
	overlay(&cfg.LogLevel, os.Getenv(EnvLogLevel))
	overlay(&cfg.Timezone, os.Getenv(EnvTimezone))
	overlay(&cfg.CredentialScheme, os.Getenv(EnvCredentialScheme))
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
