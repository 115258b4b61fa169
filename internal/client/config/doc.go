// Package config loads runtime configuration for the userkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   database file path
//	-t string   template database copied on first run
//	-s int      number of test users to ensure at startup
//	-admin      ensure the admin/admin account at startup
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Keys that are absent keep their previous value. busy_timeout accepts a
// duration string or integer nanoseconds (see timex.Duration):
//
//	{
//	  "database_path": "data/users.db",
//	  "template_path": "assets/users.db",
//	  "seed_count": 10,
//	  "seed_admin": true,
//	  "log_level": "debug",
//	  "busy_timeout": "5s"
//	}
package config
