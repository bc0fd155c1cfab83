package repository

import (
	"context"

	"moneyapi/internal/model"
)

// CategoriaRepository defines data access for categories.
type CategoriaRepository interface {
	// FindAll returns every category ordered by name.
	FindAll(ctx context.Context) ([]model.Categoria, error)

	// FindByID returns ErrNotFound when codigo does not exist.
	FindByID(ctx context.Context, codigo int64) (*model.Categoria, error)

	// Save inserts c when Codigo is zero, otherwise inserts or updates the row with that codigo.
	Save(ctx context.Context, c *model.Categoria) (*model.Categoria, error)
}
