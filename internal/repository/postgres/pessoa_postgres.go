package postgres

import (
	"context"
	"database/sql"

	"moneyapi/internal/model"
	"moneyapi/internal/repository"
)

// PessoaPostgres is a PostgreSQL implementation of repository.PessoaRepository.
type PessoaPostgres struct {
	db *sql.DB
}

func NewPessoaPostgres(db *sql.DB) *PessoaPostgres {
	return &PessoaPostgres{db: db}
}

var _ repository.PessoaRepository = (*PessoaPostgres)(nil)

func (r *PessoaPostgres) FindByID(ctx context.Context, codigo int64) (*model.Pessoa, error) {
	const q = `SELECT codigo, nome, ativo FROM pessoa WHERE codigo = $1`
	var p model.Pessoa
	if err := r.db.QueryRowContext(ctx, q, codigo).Scan(&p.Codigo, &p.Nome, &p.Ativo); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
