package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/eventdesk/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used only for decoding config files.
type FileConfig struct {
	DatabaseDSN      string `json:"database_dsn" yaml:"database_dsn"`
	LogLevel         string `json:"log_level" yaml:"log_level"`
	Timezone         string `json:"timezone" yaml:"timezone"`
	CredentialScheme string `json:"credential_scheme" yaml:"credential_scheme"`
}

// parseFile overlays cfg with the file named by -c/-config in args, if any.
// It panics when the file cannot be read or decoded.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	overlay(&cfg.DatabaseDSN, fc.DatabaseDSN)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.Timezone, fc.Timezone)
	overlay(&cfg.CredentialScheme, fc.CredentialScheme)
}
