package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moneyapi/internal/model"
)

type MockPessoaRepository struct {
	mock.Mock
}

func (m *MockPessoaRepository) FindByID(ctx context.Context, codigo int64) (*model.Pessoa, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pessoa), args.Error(1)
}
