// Package store opens the local SQLite database that backs userkeeper.
//
// On first run the database file may be seeded from a template by a verbatim
// copy. The embedded goose migrations then guarantee that the users table
// exists, so a store opened without a template is usable too.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/userkeeper/internal/filex"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// MemoryPath opens a private in-memory database; no file is touched.
const MemoryPath = ":memory:"

var (
	// ErrBootstrap reports that the template could not be copied into place.
	ErrBootstrap = errors.New("store bootstrap failed")
	// ErrStore reports a connection or query failure.
	ErrStore = errors.New("store error")
)

// Options selects the database file and how it is created.
type Options struct {
	// Path is the database file. It is created when absent.
	Path string
	// TemplatePath, when set, is copied to Path if Path does not exist yet.
	TemplatePath string
	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration
}

// EnsureDatabase copies the template to path when path is missing. It
// returns true when a copy took place. Any failure wraps ErrBootstrap.
func EnsureDatabase(path, templatePath string) (bool, error) {
	if path == MemoryPath {
		return false, nil
	}

	exists, err := filex.Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	if exists || templatePath == "" {
		return false, nil
	}

	if err := filex.EnsureParentDir(path); err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	if _, err := filex.CopyFile(templatePath, path); err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	return true, nil
}

// uriPath escapes the characters that SQLite and the driver treat as URI
// delimiters, so the opened file is exactly the one EnsureDatabase wrote.
var uriPath = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// DSN builds the modernc.org/sqlite data source name for opts.
func DSN(opts Options) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		uriPath.Replace(opts.Path), opts.BusyTimeout.Milliseconds())
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open bootstraps and opens the database described by opts. The returned
// handle is limited to one connection so that every repository call is
// serialized. Callers own it and must Close it.
func Open(ctx context.Context, opts Options, logger logging.Logger) (*sql.DB, error) {
	copied, err := EnsureDatabase(opts.Path, opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	if copied {
		logger.Info(ctx, "database seeded from template", "path", opts.Path, "template", opts.TemplatePath)
	} else if opts.Path != MemoryPath {
		if err := filex.EnsureParentDir(opts.Path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBootstrap, err)
		}
	}

	db, err := sql.Open(driverName, DSN(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStore, opts.Path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStore, opts.Path, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %w", ErrStore, opts.Path, err)
	}

	logger.Debug(ctx, "database ready", "path", opts.Path)
	return db, nil
}
