package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"moneyapi/internal/model"
	"moneyapi/internal/repository"
)

// LancamentoPostgres is a PostgreSQL implementation of repository.LancamentoRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type LancamentoPostgres struct {
	db *sql.DB
}

// NewLancamentoPostgres creates a new LancamentoPostgres repository.
func NewLancamentoPostgres(db *sql.DB) *LancamentoPostgres {
	return &LancamentoPostgres{db: db}
}

var _ repository.LancamentoRepository = (*LancamentoPostgres)(nil)

const lancamentoColumns = `
	l.codigo, l.descricao, l.data_vencimento, l.data_pagamento, l.valor,
	l.observacao, l.tipo, l.anexo, c.codigo, c.nome, p.codigo, p.nome`

const lancamentoJoins = `
	JOIN categoria c ON c.codigo = l.codigo_categoria
	JOIN pessoa p ON p.codigo = l.codigo_pessoa`

func scanLancamento(s rowScanner) (*model.Lancamento, error) {
	var (
		l          model.Lancamento
		pagamento  sql.NullTime
		observacao sql.NullString
		anexo      sql.NullString
		tipo       string
	)
	if err := s.Scan(
		&l.Codigo,
		&l.Descricao,
		&l.DataVencimento,
		&pagamento,
		&l.Valor,
		&observacao,
		&tipo,
		&anexo,
		&l.Categoria.Codigo,
		&l.Categoria.Nome,
		&l.Pessoa.Codigo,
		&l.Pessoa.Nome,
	); err != nil {
		return nil, err
	}
	if pagamento.Valid {
		d := model.DateOf(pagamento.Time)
		l.DataPagamento = &d
	}
	l.Observacao = observacao.String
	l.Anexo = anexo.String
	l.Tipo = model.TipoLancamento(tipo)
	return &l, nil
}

// writeArgs are the column values shared by insert and update, in column order.
func writeArgs(l *model.Lancamento) []any {
	var pagamento any
	if l.DataPagamento != nil && !l.DataPagamento.IsZero() {
		pagamento = l.DataPagamento.Time
	}
	return []any{
		l.Descricao,
		l.DataVencimento.Time,
		pagamento,
		l.Valor,
		nullString(l.Observacao),
		string(l.Tipo),
		l.Categoria.Codigo,
		l.Pessoa.Codigo,
		nullString(l.Anexo),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *LancamentoPostgres) FindByID(ctx context.Context, codigo int64) (*model.Lancamento, error) {
	q := `SELECT ` + lancamentoColumns + ` FROM lancamento l ` + lancamentoJoins + ` WHERE l.codigo = $1`
	l, err := scanLancamento(r.db.QueryRowContext(ctx, q, codigo))
	if err != nil {
		return nil, translate(err)
	}
	return l, nil
}

func (r *LancamentoPostgres) Create(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error) {
	q := `
		WITH l AS (
			INSERT INTO lancamento (descricao, data_vencimento, data_pagamento, valor, observacao,
				tipo, codigo_categoria, codigo_pessoa, anexo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + lancamentoColumns + ` FROM l ` + lancamentoJoins
	out, err := scanLancamento(r.db.QueryRowContext(ctx, q, writeArgs(l)...))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *LancamentoPostgres) Update(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error) {
	q := `
		WITH l AS (
			UPDATE lancamento SET
				descricao = $1, data_vencimento = $2, data_pagamento = $3, valor = $4, observacao = $5,
				tipo = $6, codigo_categoria = $7, codigo_pessoa = $8, anexo = $9
			WHERE codigo = $10
			RETURNING *
		)
		SELECT ` + lancamentoColumns + ` FROM l ` + lancamentoJoins
	args := append(writeArgs(l), l.Codigo)
	out, err := scanLancamento(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Delete removes an entry by codigo. It does not return an error if the row does not exist.
func (r *LancamentoPostgres) Delete(ctx context.Context, codigo int64) error {
	const q = `DELETE FROM lancamento WHERE codigo = $1`
	_, err := r.db.ExecContext(ctx, q, codigo)
	return err
}

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// filterClause renders f as a WHERE clause with positional arguments starting at $1.
func filterClause(f model.LancamentoFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if d := strings.TrimSpace(f.Descricao); d != "" {
		add(`l.descricao ILIKE $%d ESCAPE '\'`, "%"+likeEscaper.Replace(d)+"%")
	}
	if f.DataVencimentoDe != nil && !f.DataVencimentoDe.IsZero() {
		add("l.data_vencimento >= $%d", f.DataVencimentoDe.Time)
	}
	if f.DataVencimentoAte != nil && !f.DataVencimentoAte.IsZero() {
		add("l.data_vencimento <= $%d", f.DataVencimentoAte.Time)
	}
	if f.CodigoCategoria != 0 {
		add("l.codigo_categoria = $%d", f.CodigoCategoria)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *LancamentoPostgres) count(ctx context.Context, where string, args []any) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lancamento l`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// pageArgs appends LIMIT/OFFSET arguments and returns the matching clause.
func pageArgs(args []any, pq repository.PageQuery) (string, []any) {
	n := len(args)
	clause := fmt.Sprintf(" ORDER BY l.data_vencimento DESC, l.codigo DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	return clause, append(args, pq.Limit(), pq.Offset())
}

func (r *LancamentoPostgres) Filter(ctx context.Context, f model.LancamentoFilter, pq repository.PageQuery) (*repository.PageResult[model.Lancamento], error) {
	where, args := filterClause(f)
	total, err := r.count(ctx, where, args)
	if err != nil {
		return nil, err
	}

	page, pargs := pageArgs(args, pq)
	q := `SELECT ` + lancamentoColumns + ` FROM lancamento l ` + lancamentoJoins + where + page
	rows, err := r.db.QueryContext(ctx, q, pargs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Lancamento, 0)
	for rows.Next() {
		l, err := scanLancamento(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Lancamento]{Items: items, Total: total}, nil
}

func (r *LancamentoPostgres) Summarize(ctx context.Context, f model.LancamentoFilter, pq repository.PageQuery) (*repository.PageResult[model.ResumoLancamento], error) {
	where, args := filterClause(f)
	total, err := r.count(ctx, where, args)
	if err != nil {
		return nil, err
	}

	page, pargs := pageArgs(args, pq)
	q := `
		SELECT l.codigo, l.descricao, l.data_vencimento, l.data_pagamento, l.valor, l.tipo, c.nome, p.nome
		FROM lancamento l ` + lancamentoJoins + where + page
	rows, err := r.db.QueryContext(ctx, q, pargs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ResumoLancamento, 0)
	for rows.Next() {
		var (
			res       model.ResumoLancamento
			pagamento sql.NullTime
			tipo      string
		)
		if err := rows.Scan(
			&res.Codigo,
			&res.Descricao,
			&res.DataVencimento,
			&pagamento,
			&res.Valor,
			&tipo,
			&res.Categoria,
			&res.Pessoa,
		); err != nil {
			return nil, err
		}
		if pagamento.Valid {
			d := model.DateOf(pagamento.Time)
			res.DataPagamento = &d
		}
		res.Tipo = model.TipoLancamento(tipo)
		items = append(items, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ResumoLancamento]{Items: items, Total: total}, nil
}

func (r *LancamentoPostgres) StatsByCategoria(ctx context.Context, ref model.Date) ([]model.LancamentoEstatisticaCategoria, error) {
	const q = `
		SELECT c.codigo, c.nome, SUM(l.valor)
		FROM lancamento l
		JOIN categoria c ON c.codigo = l.codigo_categoria
		WHERE l.data_vencimento BETWEEN $1 AND $2
		GROUP BY c.codigo, c.nome
		ORDER BY SUM(l.valor) DESC, c.nome
	`
	rows, err := r.db.QueryContext(ctx, q, ref.FirstOfMonth().Time, ref.LastOfMonth().Time)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LancamentoEstatisticaCategoria, 0)
	for rows.Next() {
		var e model.LancamentoEstatisticaCategoria
		if err := rows.Scan(&e.Categoria.Codigo, &e.Categoria.Nome, &e.Total); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *LancamentoPostgres) StatsByDia(ctx context.Context, ref model.Date) ([]model.LancamentoEstatisticaDia, error) {
	const q = `
		SELECT l.tipo, l.data_vencimento, SUM(l.valor)
		FROM lancamento l
		WHERE l.data_vencimento BETWEEN $1 AND $2
		GROUP BY l.tipo, l.data_vencimento
		ORDER BY l.data_vencimento, l.tipo
	`
	rows, err := r.db.QueryContext(ctx, q, ref.FirstOfMonth().Time, ref.LastOfMonth().Time)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LancamentoEstatisticaDia, 0)
	for rows.Next() {
		var (
			e    model.LancamentoEstatisticaDia
			tipo string
		)
		if err := rows.Scan(&tipo, &e.Dia, &e.Total); err != nil {
			return nil, err
		}
		e.Tipo = model.TipoLancamento(tipo)
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *LancamentoPostgres) StatsByPessoa(ctx context.Context, inicio, fim model.Date) ([]model.LancamentoEstatisticaPessoa, error) {
	const q = `
		SELECT l.tipo, p.codigo, p.nome, p.ativo, SUM(l.valor)
		FROM lancamento l
		JOIN pessoa p ON p.codigo = l.codigo_pessoa
		WHERE l.data_vencimento BETWEEN $1 AND $2
		GROUP BY l.tipo, p.codigo, p.nome, p.ativo
		ORDER BY p.nome, l.tipo
	`
	rows, err := r.db.QueryContext(ctx, q, inicio.Time, fim.Time)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LancamentoEstatisticaPessoa, 0)
	for rows.Next() {
		var (
			e    model.LancamentoEstatisticaPessoa
			tipo string
		)
		if err := rows.Scan(&tipo, &e.Pessoa.Codigo, &e.Pessoa.Nome, &e.Pessoa.Ativo, &e.Total); err != nil {
			return nil, err
		}
		e.Tipo = model.TipoLancamento(tipo)
		items = append(items, e)
	}
	return items, rows.Err()
}
