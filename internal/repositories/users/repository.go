// Package users provides durable storage for identity records.
package users

import (
	"context"

	"github.com/dlevchenko/staffgraph/internal/models"
)

// Repository is the storage boundary for users. Implementations return
// common.ErrorNotFound when no record matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
}
