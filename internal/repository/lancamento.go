package repository

import (
	"context"

	"moneyapi/internal/model"
)

// LancamentoRepository defines data access for financial entries.
// No business logic here, strictly persistence operations.
type LancamentoRepository interface {
	// FindByID returns ErrNotFound when codigo does not exist.
	FindByID(ctx context.Context, codigo int64) (*model.Lancamento, error)

	// Create inserts l and returns the stored entry with its categoria and pessoa names.
	Create(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error)

	// Update overwrites the row identified by l.Codigo. Returns ErrNotFound if it does not exist.
	Update(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error)

	// Delete removes an entry by codigo. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, codigo int64) error

	// Filter returns a page of entries matching f.
	Filter(ctx context.Context, f model.LancamentoFilter, pq PageQuery) (*PageResult[model.Lancamento], error)

	// Summarize is Filter with the summary projection.
	Summarize(ctx context.Context, f model.LancamentoFilter, pq PageQuery) (*PageResult[model.ResumoLancamento], error)

	// StatsByCategoria totals the entries due in the month of ref per category.
	StatsByCategoria(ctx context.Context, ref model.Date) ([]model.LancamentoEstatisticaCategoria, error)

	// StatsByDia totals the entries due in the month of ref per type and day.
	StatsByDia(ctx context.Context, ref model.Date) ([]model.LancamentoEstatisticaDia, error)

	// StatsByPessoa totals the entries due in [inicio, fim] per type and person.
	StatsByPessoa(ctx context.Context, inicio, fim model.Date) ([]model.LancamentoEstatisticaPessoa, error)
}
