package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyapi/internal/model"
)

func validLancamento() model.Lancamento {
	return model.Lancamento{
		Descricao:      "Conta de luz",
		DataVencimento: model.NewDate(2024, time.July, 10),
		Valor:          decimal.RequireFromString("120.35"),
		Tipo:           model.Despesa,
		Categoria:      model.CategoriaRef{Codigo: 3},
		Pessoa:         model.PessoaRef{Codigo: 1},
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func hasPrefix(names []string, prefix string) bool {
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}

func TestStruct_Categoria(t *testing.T) {
	tests := []struct {
		name       string
		categoria  model.Categoria
		wantFields []string
	}{
		{name: "valid", categoria: model.Categoria{Nome: "Lazer"}},
		{name: "missing nome", categoria: model.Categoria{}, wantFields: []string{"nome"}},
		{name: "nome too short", categoria: model.Categoria{Nome: "ab"}, wantFields: []string{"nome"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.categoria)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestStruct_Lancamento(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(validLancamento()))
	})

	t.Run("zero valor is accepted", func(t *testing.T) {
		l := validLancamento()
		l.Valor = decimal.RequireFromString("0")
		assert.NoError(t, Struct(l))
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := Struct(model.Lancamento{})
		names := fieldNames(t, err)
		assert.Contains(t, names, "descricao")
		assert.Contains(t, names, "dataVencimento")
		assert.Contains(t, names, "valor")
		assert.Contains(t, names, "tipo")
		assert.True(t, hasPrefix(names, "categoria"), names)
		assert.True(t, hasPrefix(names, "pessoa"), names)
	})

	t.Run("invalid tipo", func(t *testing.T) {
		l := validLancamento()
		l.Tipo = "TRANSFERENCIA"
		err := Struct(l)
		assert.Equal(t, []string{"tipo"}, fieldNames(t, err))
		assert.Contains(t, err.Error(), "tipo: must be one of RECEITA DESPESA")
	})
}
