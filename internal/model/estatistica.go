package model

import "github.com/shopspring/decimal"

// LancamentoEstatisticaCategoria totals a month of entries per category.
type LancamentoEstatisticaCategoria struct {
	Categoria Categoria       `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
}

// LancamentoEstatisticaDia totals a month of entries per type and due day.
type LancamentoEstatisticaDia struct {
	Tipo  TipoLancamento  `json:"tipo"`
	Dia   Date            `json:"dia"`
	Total decimal.Decimal `json:"total"`
}

// LancamentoEstatisticaPessoa totals entries in a period per type and person.
type LancamentoEstatisticaPessoa struct {
	Tipo   TipoLancamento  `json:"tipo"`
	Pessoa Pessoa          `json:"pessoa"`
	Total  decimal.Decimal `json:"total"`
}
