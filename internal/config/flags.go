package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/eventdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   database DSN
//	-l string   log level
//	-z string   time zone
//	-s string   credential scheme
//
// Only these flags are looked at; flagx.FilterArgs drops the rest.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-z", "-s"})

	fs := flag.NewFlagSet("eventdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (SQLite path or postgres:// URL)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Timezone, "z", cfg.Timezone, "time zone for calendar dates")
	fs.StringVar(&cfg.CredentialScheme, "s", cfg.CredentialScheme, "credential scheme for new passwords")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
