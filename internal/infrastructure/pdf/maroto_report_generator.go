// Package pdf genera el reporte de analítica imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Therra + título         │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos | Egresos | Utilidad neta | Pedidos      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Ingresos | Egresos | Neto (últimos 30 días) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
)

var _ ports.AnalyticsReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 16, Green: 112, Blue: 84}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 190, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.AnalyticsReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. Los montos salen en formato de Indonesia (Rp 1.500.000).
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(language.Indonesian)}
}

// GenerateAnalyticsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAnalyticsPDF(
	_ context.Context,
	report *dto.AnalyticsResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Analitik Therra", true).
		WithAuthor("Therra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.dailyRows(report.DailyData) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Therra", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Laporan Analitik Penjualan", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Dibuat: "+generatedAt.UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cuatro tarjetas con los totales históricos.
func (g *MarotoReportGenerator) summaryRow(s dto.AnalyticsSummaryDTO) core.Row {
	card := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 8, Align: align.Center, Color: valueColor}),
		)
	}
	return row.New(18).Add(
		card("Total Pemasukan", g.rupiah(s.TotalIncome), nil),
		card("Total Pengeluaran", g.rupiah(s.TotalExpense), nil),
		card("Laba Bersih", g.rupiah(s.NetProfit), amountColor(s.NetProfit)),
		card("Total Pesanan", g.printer.Sprintf("%d", s.TotalOrders), nil),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, a align.Type) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Tanggal", align.Left),
		h("Pemasukan", align.Right),
		h("Pengeluaran", align.Right),
		h("Bersih", align.Right),
	)
}

// dailyRows: una fila por día con movimientos.
func (g *MarotoReportGenerator) dailyRows(daily []dto.DailyDataDTO) []core.Row {
	if len(daily) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Belum ada transaksi dalam 30 hari terakhir.", props.Text{
				Size: 8, Color: colorGray, Top: 2, Align: align.Center,
			}),
		))}
	}
	result := make([]core.Row, 0, len(daily))
	for _, d := range daily {
		cell := func(s string, a align.Type, c *props.Color) core.Col {
			return col.New(3).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Color: c}))
		}
		result = append(result, row.New(6).Add(
			cell(d.Date, align.Left, nil),
			cell(g.rupiah(d.Income), align.Right, nil),
			cell(g.rupiah(d.Expense), align.Right, nil),
			cell(g.rupiah(d.Net), align.Right, amountColor(d.Net)),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Laba bersih = total pemasukan - total pengeluaran. Dihitung saat laporan dibuat.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// rupiah formatea un monto sin decimales con separador de miles de Indonesia.
// Ej: 1500000 → "Rp 1.500.000", -20000 → "-Rp 20.000".
func (g *MarotoReportGenerator) rupiah(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "Rp " + g.printer.Sprintf("%d", n)
}

func amountColor(d decimal.Decimal) *props.Color {
	if d.IsNegative() {
		return colorNegative
	}
	return nil
}
