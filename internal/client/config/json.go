package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/flagx"
	"github.com/dmitrijs2005/userkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from a zero value.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	TemplatePath *string         `json:"template_path"`
	SeedCount    *int            `json:"seed_count"`
	SeedAdmin    *bool           `json:"seed_admin"`
	LogLevel     *string         `json:"log_level"`
	BusyTimeout  *timex.Duration `json:"busy_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.TemplatePath != nil {
		cfg.TemplatePath = *jc.TemplatePath
	}
	if jc.SeedCount != nil {
		cfg.SeedCount = *jc.SeedCount
	}
	if jc.SeedAdmin != nil {
		cfg.SeedAdmin = *jc.SeedAdmin
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.BusyTimeout != nil {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
	return nil
}
