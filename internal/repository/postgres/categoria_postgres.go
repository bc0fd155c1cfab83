package postgres

import (
	"context"
	"database/sql"
	"errors"

	"moneyapi/internal/model"
	"moneyapi/internal/repository"
)

// CategoriaPostgres is a PostgreSQL implementation of repository.CategoriaRepository.
type CategoriaPostgres struct {
	db *sql.DB
}

// NewCategoriaPostgres creates a new CategoriaPostgres repository.
func NewCategoriaPostgres(db *sql.DB) *CategoriaPostgres {
	return &CategoriaPostgres{db: db}
}

var _ repository.CategoriaRepository = (*CategoriaPostgres)(nil)

func (r *CategoriaPostgres) FindAll(ctx context.Context) ([]model.Categoria, error) {
	const q = `SELECT codigo, nome FROM categoria ORDER BY nome, codigo`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Categoria, 0)
	for rows.Next() {
		var c model.Categoria
		if err := rows.Scan(&c.Codigo, &c.Nome); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CategoriaPostgres) FindByID(ctx context.Context, codigo int64) (*model.Categoria, error) {
	const q = `SELECT codigo, nome FROM categoria WHERE codigo = $1`
	var c model.Categoria
	if err := r.db.QueryRowContext(ctx, q, codigo).Scan(&c.Codigo, &c.Nome); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Save updates the categoria identified by c.Codigo when it exists and
// otherwise inserts c under a newly generated codigo. A caller-chosen codigo
// is never inserted, so the codigo sequence stays ahead of every row.
func (r *CategoriaPostgres) Save(ctx context.Context, c *model.Categoria) (*model.Categoria, error) {
	const qInsert = `
		INSERT INTO categoria (nome)
		VALUES ($1)
		RETURNING codigo, nome
	`
	const qUpdate = `
		UPDATE categoria SET nome = $2
		WHERE codigo = $1
		RETURNING codigo, nome
	`

	var out model.Categoria
	if c.Codigo != 0 {
		err := r.db.QueryRowContext(ctx, qUpdate, c.Codigo, c.Nome).Scan(&out.Codigo, &out.Nome)
		if err == nil {
			return &out, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, translate(err)
		}
	}

	if err := r.db.QueryRowContext(ctx, qInsert, c.Nome).Scan(&out.Codigo, &out.Nome); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}
