package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moneyapi/internal/model"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) PorPessoa(ctx context.Context, dados []model.LancamentoEstatisticaPessoa, inicio, fim model.Date) ([]byte, error) {
	args := m.Called(ctx, dados, inicio, fim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
