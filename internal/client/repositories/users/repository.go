package users

import (
	"context"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

// Repository is the data-access contract for the users table.
//
// Lookups that match nothing return models.NotFound() and a nil error; an
// error always means the store itself failed.
type Repository interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	ListSafe(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, username, newPassword string) (bool, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
}
