package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moneyapi/internal/model"
	"moneyapi/internal/repository"
)

type MockLancamentoRepository struct {
	mock.Mock
}

func (m *MockLancamentoRepository) FindByID(ctx context.Context, codigo int64) (*model.Lancamento, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lancamento), args.Error(1)
}

func (m *MockLancamentoRepository) Create(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lancamento), args.Error(1)
}

func (m *MockLancamentoRepository) Update(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lancamento), args.Error(1)
}

func (m *MockLancamentoRepository) Delete(ctx context.Context, codigo int64) error {
	args := m.Called(ctx, codigo)
	return args.Error(0)
}

func (m *MockLancamentoRepository) Filter(ctx context.Context, f model.LancamentoFilter, pq repository.PageQuery) (*repository.PageResult[model.Lancamento], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Lancamento]), args.Error(1)
}

func (m *MockLancamentoRepository) Summarize(ctx context.Context, f model.LancamentoFilter, pq repository.PageQuery) (*repository.PageResult[model.ResumoLancamento], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ResumoLancamento]), args.Error(1)
}

func (m *MockLancamentoRepository) StatsByCategoria(ctx context.Context, ref model.Date) ([]model.LancamentoEstatisticaCategoria, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LancamentoEstatisticaCategoria), args.Error(1)
}

func (m *MockLancamentoRepository) StatsByDia(ctx context.Context, ref model.Date) ([]model.LancamentoEstatisticaDia, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LancamentoEstatisticaDia), args.Error(1)
}

func (m *MockLancamentoRepository) StatsByPessoa(ctx context.Context, inicio, fim model.Date) ([]model.LancamentoEstatisticaPessoa, error) {
	args := m.Called(ctx, inicio, fim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LancamentoEstatisticaPessoa), args.Error(1)
}
