package model

import "github.com/shopspring/decimal"

func init() {
	// monetary values travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// TipoLancamento tells income from expense.
type TipoLancamento string

const (
	Receita TipoLancamento = "RECEITA"
	Despesa TipoLancamento = "DESPESA"
)

// CategoriaRef points a Lancamento at a Categoria by codigo.
type CategoriaRef struct {
	Codigo int64  `json:"codigo" validate:"required"`
	Nome   string `json:"nome,omitempty"`
}

// PessoaRef points a Lancamento at a Pessoa by codigo.
type PessoaRef struct {
	Codigo int64  `json:"codigo" validate:"required"`
	Nome   string `json:"nome,omitempty"`
}

// Lancamento is a financial entry.
type Lancamento struct {
	Codigo         int64           `json:"codigo"`
	Descricao      string          `json:"descricao" validate:"required,max=50"`
	DataVencimento Date            `json:"dataVencimento" validate:"required"`
	DataPagamento  *Date           `json:"dataPagamento"`
	Valor          decimal.Decimal `json:"valor" validate:"required"`
	Observacao     string          `json:"observacao,omitempty" validate:"max=100"`
	Tipo           TipoLancamento  `json:"tipo" validate:"required,oneof=RECEITA DESPESA"`
	Categoria      CategoriaRef    `json:"categoria" validate:"required"`
	Pessoa         PessoaRef       `json:"pessoa" validate:"required"`
	Anexo          string          `json:"anexo,omitempty" validate:"max=200"`
	URLAnexo       string          `json:"urlAnexo,omitempty"`
}

// ResumoLancamento is the summary projection returned by ?resumo searches.
type ResumoLancamento struct {
	Codigo         int64           `json:"codigo"`
	Descricao      string          `json:"descricao"`
	DataVencimento Date            `json:"dataVencimento"`
	DataPagamento  *Date           `json:"dataPagamento"`
	Valor          decimal.Decimal `json:"valor"`
	Tipo           TipoLancamento  `json:"tipo"`
	Categoria      string          `json:"categoria"`
	Pessoa         string          `json:"pessoa"`
}

// LancamentoFilter parameterizes entry searches. Zero fields do not filter.
type LancamentoFilter struct {
	Descricao         string
	DataVencimentoDe  *Date
	DataVencimentoAte *Date
	CodigoCategoria   int64
}

// Anexo is the result of an attachment upload.
type Anexo struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
}
