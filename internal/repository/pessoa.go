package repository

import (
	"context"

	"moneyapi/internal/model"
)

// PessoaRepository is the read side of people needed by entries.
type PessoaRepository interface {
	FindByID(ctx context.Context, codigo int64) (*model.Pessoa, error)
}
