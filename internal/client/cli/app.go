package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/client/config"
	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/services"
	"github.com/dmitrijs2005/userkeeper/internal/client/store"
	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

// Default account ensured at startup when Config.SeedAdmin is set.
const (
	adminUsername = "admin"
	adminPassword = "admin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService services.UserService
	reader      *bufio.Reader
	out         io.Writer

	// current is the logged-in user; nil before login and after logout.
	current   *models.User
	sessionID string
}

// NewApp opens the store and prepares the startup accounts. A store that
// cannot be bootstrapped or opened is a fatal error.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	db, err := store.Open(ctx, store.Options{
		Path:         c.DatabasePath,
		TemplatePath: c.TemplatePath,
		BusyTimeout:  c.BusyTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	app := newApp(c, logger, db, services.NewUserService(db, logger), os.Stdin, os.Stdout)

	if err := app.prepare(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, us services.UserService, in io.Reader, out io.Writer) *App {
	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		userService: us,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// prepare ensures the accounts requested by the config exist.
func (a *App) prepare(ctx context.Context) error {
	if a.config.SeedAdmin {
		password := []byte(adminPassword)
		defer common.WipeByteArray(password)

		created, err := a.userService.EnsureUser(ctx, adminUsername, password)
		if err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
		if created {
			a.logger.Warn(ctx, "default admin account created; change its password", "user", adminUsername)
		}
	}

	res, err := a.userService.SeedTestUsers(ctx, a.config.SeedCount)
	if err != nil {
		return err
	}
	if a.config.SeedCount > 0 {
		fmt.Fprintf(a.out, "Test users: inserted=%d skipped=%d\n", res.Inserted, res.Skipped)
	}
	return nil
}

// Run starts the REPL and releases the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "userkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out, a.logger)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current.Username)
}
