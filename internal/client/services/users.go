// Package services contains application services for the userkeeper client.
// This file defines the user service: login against the local store,
// registration with a duplicate check, password changes, removal, the
// password-free listing and test-user seeding.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/dbx"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

// Prefixes of the accounts created by SeedTestUsers.
const (
	TestUserPrefix     = "usuario_test"
	TestPasswordPrefix = "pass"
)

// SeedResult summarizes a SeedTestUsers run.
type SeedResult struct {
	Inserted int
	Skipped  int
}

// UserService defines the user operations available to the CLI.
//
// Passwords travel as byte slices so the caller can wipe them afterwards.
// They are stored as plain text.
type UserService interface {
	Login(ctx context.Context, username string, password []byte) (models.User, error)
	Register(ctx context.Context, username string, password []byte) (int64, error)
	ChangePassword(ctx context.Context, username string, newPassword []byte) error
	Remove(ctx context.Context, username string) (int64, error)
	List(ctx context.Context) ([]models.User, error)
	EnsureUser(ctx context.Context, username string, password []byte) (bool, error)
	SeedTestUsers(ctx context.Context, count int) (SeedResult, error)
}

type userService struct {
	db     *sql.DB
	logger logging.Logger
}

// NewUserService constructs a UserService bound to the given database.
func NewUserService(db *sql.DB, logger logging.Logger) UserService {
	return &userService{db: db, logger: logger}
}

func (s *userService) getRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Login returns the stored user matching both username and password, or
// common.ErrorUnauthorized.
func (s *userService) Login(ctx context.Context, username string, password []byte) (models.User, error) {
	u, err := s.getRepo(s.db).Authenticate(ctx, username, string(password))
	if err != nil {
		return models.NotFound(), err
	}
	if !u.Exists() {
		s.logger.Info(ctx, "login rejected", "user", username)
		return models.NotFound(), common.ErrorUnauthorized
	}
	s.logger.Info(ctx, "login accepted", "user", username, "id", u.ID)
	return u.Safe(), nil
}

// Register creates a new account. Unlike the repository it refuses a name
// that is already taken.
func (s *userService) Register(ctx context.Context, username string, password []byte) (int64, error) {
	if err := validateCredentials(username, password); err != nil {
		return models.NotFoundID, err
	}

	var id int64 = models.NotFoundID
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getRepo(tx)

		existing, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing.Exists() {
			return fmt.Errorf("user %s: %w", username, common.ErrorAlreadyExists)
		}

		id, err = repo.Create(ctx, &models.User{Username: username, Password: string(password)})
		return err
	})
	if err != nil {
		return models.NotFoundID, err
	}

	s.logger.Info(ctx, "user registered", "user", username, "id", id)
	return id, nil
}

// ChangePassword updates every row named username. It returns
// common.ErrorNotFound when no row matched.
func (s *userService) ChangePassword(ctx context.Context, username string, newPassword []byte) error {
	if err := validateCredentials(username, newPassword); err != nil {
		return err
	}

	ok, err := s.getRepo(s.db).UpdatePassword(ctx, username, string(newPassword))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %s: %w", username, common.ErrorNotFound)
	}

	s.logger.Info(ctx, "password changed", "user", username)
	return nil
}

// Remove deletes every row named username and returns how many went away.
func (s *userService) Remove(ctx context.Context, username string) (int64, error) {
	n, err := s.getRepo(s.db).DeleteByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "user removed", "user", username, "rows", n)
	return n, nil
}

// List returns all users without passwords.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.getRepo(s.db).ListSafe(ctx)
}

// EnsureUser creates username unless a row with that name exists already.
// It reports whether a row was inserted.
func (s *userService) EnsureUser(ctx context.Context, username string, password []byte) (bool, error) {
	_, err := s.Register(ctx, username, password)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, common.ErrorAlreadyExists) {
		return false, nil
	}
	return false, err
}

// SeedTestUsers inserts usuario_test1..usuario_testN with passwords
// pass1..passN, skipping names that exist. It runs in one transaction, so
// either every missing account is added or none is.
func (s *userService) SeedTestUsers(ctx context.Context, count int) (SeedResult, error) {
	var res SeedResult
	if count <= 0 {
		return res, nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getRepo(tx)

		for i := 1; i <= count; i++ {
			username := fmt.Sprintf("%s%d", TestUserPrefix, i)

			existing, err := repo.GetByUsername(ctx, username)
			if err != nil {
				return err
			}
			if existing.Exists() {
				res.Skipped++
				continue
			}

			u := &models.User{Username: username, Password: fmt.Sprintf("%s%d", TestPasswordPrefix, i)}
			if _, err := repo.Create(ctx, u); err != nil {
				return err
			}
			res.Inserted++
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed test users: %w", err)
	}

	s.logger.Info(ctx, "test users seeded", "inserted", res.Inserted, "skipped", res.Skipped)
	return res, nil
}

func validateCredentials(username string, password []byte) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("empty username: %w", common.ErrorValidation)
	}
	if len(password) == 0 {
		return fmt.Errorf("empty password: %w", common.ErrorValidation)
	}
	return nil
}
