// Package repository holds the persistence ports the services depend on and
// their MongoDB implementations.
package repository

import (
	"context"

	"github.com/ashutoshmishr0/Blogify-backend/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateByID applies a partial update and returns the updated record.
	// Fields absent from the map are left untouched.
	UpdateByID(ctx context.Context, id string, fields map[string]any) (*models.User, error)
	DeleteByID(ctx context.Context, id string) error
}

// PostFilter selects posts by exact author username or by category
// membership. The zero value matches everything.
type PostFilter struct {
	Username string
	Category string
}

type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) (*models.Post, error)
	DeleteByID(ctx context.Context, id string) error
	Find(ctx context.Context, f PostFilter) ([]models.Post, error)
	// DeleteByUsername removes every post authored by username and reports
	// how many were deleted.
	DeleteByUsername(ctx context.Context, username string) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *models.Category) error
	FindAll(ctx context.Context) ([]models.Category, error)
}
