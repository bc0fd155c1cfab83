package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moneyapi/internal/model"
)

type MockCategoriaRepository struct {
	mock.Mock
}

func (m *MockCategoriaRepository) FindAll(ctx context.Context) ([]model.Categoria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) FindByID(ctx context.Context, codigo int64) (*model.Categoria, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) Save(ctx context.Context, c *model.Categoria) (*model.Categoria, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Categoria), args.Error(1)
}
