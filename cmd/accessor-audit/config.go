package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// auditConfig holds the settings an audit run can read from a TOML file.
// Command-line flags override every field.
type auditConfig struct {
	Patterns         []string `toml:"patterns"`
	IncludeNonPublic bool     `toml:"include_non_public"`
}

func loadConfig(path string) (auditConfig, error) {
	var cfg auditConfig

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return auditConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return cfg, nil
}
