package service

import (
	"context"

	"lexfeed/internal/model"
)

// UserIndex is the slice of the full-text index the services depend on.
// Satisfied by *search.Index.
type UserIndex interface {
	IndexUser(u *model.User) error
	Search(ctx context.Context, query string, limit int) ([]uint, error)
}
