// Package users persists account records and their credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/sampleapp/internal/server/models"
)

// Repository is the storage contract the services rely on. Lookups return
// common.ErrorNotFound when no row matches; Create returns
// common.ErrorAlreadyExists when the email is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends
	// where the backend supports it.
	FindByIDForUpdate(ctx context.Context, id string) (*models.User, error)
	UpdateCredential(ctx context.Context, id, salt, encryptedPassword string) error
	SetAdmin(ctx context.Context, id string, admin bool) error
	Delete(ctx context.Context, id string) error
}
