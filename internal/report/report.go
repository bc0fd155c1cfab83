package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"moneyapi/internal/model"
)

// Generator renders reports as PDF documents.
type Generator interface {
	PorPessoa(ctx context.Context, dados []model.LancamentoEstatisticaPessoa, inicio, fim model.Date) ([]byte, error)
}

// PDF renders reports with fpdf. The zero value is ready to use.
type PDF struct{}

func NewPDF() *PDF { return &PDF{} }

var _ Generator = (*PDF)(nil)

const displayLayout = "02/01/2006"

// PorPessoa renders the per-person totals of a period as an A4 table.
func (g *PDF) PorPessoa(ctx context.Context, dados []model.LancamentoEstatisticaPessoa, inicio, fim model.Date) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lançamentos por pessoa", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Lançamentos por pessoa"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	periodo := fmt.Sprintf("De %s até %s", inicio.Format(displayLayout), fim.Format(displayLayout))
	pdf.CellFormat(0, 8, tr(periodo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{100, 40, 50}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Pessoa", "Tipo", "Total"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var receitas, despesas decimal.Decimal
	for _, d := range dados {
		pdf.CellFormat(widths[0], 7, tr(d.Pessoa.Nome), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tipoLabel(d.Tipo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, FormatBRL(d.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)

		switch d.Tipo {
		case model.Receita:
			receitas = receitas.Add(d.Total)
		case model.Despesa:
			despesas = despesas.Add(d.Total)
		}
	}
	if len(dados) == 0 {
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, tr("Nenhum lançamento no período"), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1], 7, "Total de receitas", "", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, FormatBRL(receitas), "", 1, "R", false, 0, "")
	pdf.CellFormat(widths[0]+widths[1], 7, "Total de despesas", "", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, FormatBRL(despesas), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func tipoLabel(t model.TipoLancamento) string {
	switch t {
	case model.Receita:
		return "Receita"
	case model.Despesa:
		return "Despesa"
	default:
		return string(t)
	}
}

// FormatBRL formats v as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + b.String() + "," + frac
}
