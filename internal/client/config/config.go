package config

import "time"

// Config holds runtime settings for the userkeeper CLI.
type Config struct {
	// DatabasePath is the SQLite file holding the users table.
	DatabasePath string
	// TemplatePath is copied to DatabasePath on first run. Empty means the
	// schema is created from scratch.
	TemplatePath string
	// SeedCount test users (usuario_testN/passN) are ensured at startup.
	SeedCount int
	// SeedAdmin ensures an admin/admin account at startup.
	SeedAdmin bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// BusyTimeout is how long SQLite waits for a lock.
	BusyTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "data/users.db"
	c.TemplatePath = ""
	c.SeedCount = 10
	c.SeedAdmin = true
	c.LogLevel = "info"
	c.BusyTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the JSON file (if -c/-config is given) and from command-line flags.
// Later sources take precedence over earlier ones. args excludes the
// program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
