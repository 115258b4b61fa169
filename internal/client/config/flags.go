package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/userkeeper/internal/flagx"
)

// parseFlags populates cfg from the flags it owns; other arguments, such
// as -c, are filtered out by flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-t", "-s", "-admin", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file path")
	fs.StringVar(&cfg.TemplatePath, "t", cfg.TemplatePath, "template database copied on first run")
	fs.IntVar(&cfg.SeedCount, "s", cfg.SeedCount, "number of test users to ensure at startup")
	fs.BoolVar(&cfg.SeedAdmin, "admin", cfg.SeedAdmin, "ensure the admin/admin account at startup")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
