package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"moneyapi/internal/model"
)

type MockLancamentoService struct {
	mock.Mock
}

func (m *MockLancamentoService) Buscar(ctx context.Context, codigo int64) (*model.Lancamento, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lancamento), args.Error(1)
}

func (m *MockLancamentoService) Salvar(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lancamento), args.Error(1)
}

func (m *MockLancamentoService) Atualizar(ctx context.Context, codigo int64, l *model.Lancamento) (*model.Lancamento, error) {
	args := m.Called(ctx, codigo, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lancamento), args.Error(1)
}

func (m *MockLancamentoService) UploadAnexo(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Anexo, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Anexo), args.Error(1)
}

func (m *MockLancamentoService) RelatorioPorPessoa(ctx context.Context, inicio, fim model.Date) ([]byte, error) {
	args := m.Called(ctx, inicio, fim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
