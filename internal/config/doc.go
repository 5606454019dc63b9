// Package config loads runtime configuration for the eventdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file from the
//     working directory (see parseEnv).
//  3. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON (see parseFile).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-d string   database DSN: a SQLite path or a postgres:// URL
//	-l string   log level: debug, info, warn or error
//	-z string   IANA time zone used for calendar dates, e.g. Europe/Riga
//	-s string   credential scheme for new passwords: argon2id or legacy
//
// Environment
//
//	EVENTDESK_DSN, EVENTDESK_LOG_LEVEL, EVENTDESK_TIMEZONE,
//	EVENTDESK_CREDENTIAL_SCHEME
//
// # File schema
//
//	{
//	  "database_dsn": "eventdesk.db",
//	  "log_level": "info",
//	  "timezone": "UTC",
//	  "credential_scheme": "argon2id"
//	}
//
// Empty values in the environment or the file leave the earlier value alone.
// An unreadable or malformed file, or a bad flag, panics.
package config
