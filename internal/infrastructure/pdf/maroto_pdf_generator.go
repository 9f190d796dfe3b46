// Package pdf genera el reporte PDF de los estados financieros (Perú, PCGE).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RUC  │  Título + rango de fechas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO DE RESULTADOS          (concepto | importe)         │
//	│  ESTADO DE SITUACIÓN FINANCIERA                             │
//	│  ESTADO DE FLUJOS DE EFECTIVO                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: nombre | valor | semáforo                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cuadre, versión PCGE, export_id                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/domain/ratios"
)

var _ reporting.StatementsPDFGenerator = (*StatementsPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 20, Green: 130, Blue: 60}
	colorYellow  = &props.Color{Red: 190, Green: 140, Blue: 0}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StatementsPDFGenerator implementa reporting.StatementsPDFGenerator usando Maroto v2.
type StatementsPDFGenerator struct{}

// NewStatementsPDFGenerator construye el generador.
func NewStatementsPDFGenerator() *StatementsPDFGenerator { return &StatementsPDFGenerator{} }

// GenerateStatementsPDF genera el PDF y devuelve sus bytes.
func (g *StatementsPDFGenerator) GenerateStatementsPDF(_ context.Context, r *dto.StatementsReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estados Financieros", true).
		WithAuthor(r.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	is := r.IncomeStatement
	m.AddRows(section("ESTADO DE RESULTADOS",
		item{"Ventas brutas", is.VentasBrutas, false},
		item{"(-) Descuentos", is.Descuentos, false},
		item{"Ventas netas", is.VentasNetas, true},
		item{"(-) Costo de ventas", is.CostoVentas, false},
		item{"Utilidad bruta", is.UtilidadBruta, true},
		item{"(-) Gastos administrativos", is.GastosAdministrativos, false},
		item{"(-) Gastos de ventas", is.GastosVentas, false},
		item{"Utilidad operativa", is.UtilidadOperativa, true},
		item{"(+) Ingresos financieros", is.IngresosFinancieros, false},
		item{"(-) Gastos financieros", is.GastosFinancieros, false},
		item{"Utilidad antes de impuestos", is.UtilidadAntesImpuestos, true},
		item{"(-) Impuesto a la renta", is.ImpuestoRenta, false},
		item{"Utilidad neta", is.UtilidadNeta, true},
		item{"EBITDA", is.EBITDA, false},
	)...)

	bs := r.BalanceSheet
	m.AddRows(section("ESTADO DE SITUACIÓN FINANCIERA",
		item{"Activo corriente", bs.ActivoCorriente, false},
		item{"Activo no corriente", bs.ActivoNoCorriente, false},
		item{"Total activos", bs.TotalActivos, true},
		item{"Pasivo corriente", bs.PasivoCorriente, false},
		item{"  Impuesto a la renta por pagar", bs.ImpuestoRentaPorPagar, false},
		item{"Pasivo no corriente", bs.PasivoNoCorriente, false},
		item{"Total pasivos", bs.TotalPasivos, true},
		item{"Capital", bs.Capital, false},
		item{"Reservas", bs.Reservas, false},
		item{"Resultados acumulados", bs.ResultadosAcumulados, false},
		item{"Utilidad del ejercicio", bs.UtilidadEjercicio, false},
		item{"Total patrimonio", bs.TotalPatrimonio, true},
	)...)

	cf := r.CashFlow
	m.AddRows(section("ESTADO DE FLUJOS DE EFECTIVO",
		item{"Cobros a clientes", cf.CobrosClientes, false},
		item{"Pagos a proveedores", cf.PagosProveedores, false},
		item{"Pagos de planilla", cf.PagosPlanilla, false},
		item{"Pagos de impuestos", cf.PagosImpuestos, false},
		item{"Otros pagos operativos", cf.OtrosPagosOperativos, false},
		item{"Flujo de operación", cf.FlujoOperativo, true},
		item{"Flujo de inversión", cf.FlujoInversion, true},
		item{"Flujo de financiamiento", cf.FlujoFinanciamiento, true},
		item{"Saldo inicial", cf.SaldoInicial, false},
		item{"Variación neta", cf.VariacionNeta, false},
		item{"Saldo final", cf.SaldoFinal, true},
	)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ratioRows(r.Ratios)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// item concepto de un estado; total resalta la fila.
type item struct {
	label  string
	amount decimal.Decimal
	total  bool
}

// headerRow: razón social + RUC (izq) y título + rango (der).
func headerRow(r *dto.StatementsReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC: "+r.RUC, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADOS FINANCIEROS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Del "+r.From+" al "+r.To, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Expresado en soles", props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// section título más una fila por concepto.
func section(title string, items ...item) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
			}),
		)),
	}
	for _, it := range items {
		style := fontstyle.Normal
		if it.total {
			style = fontstyle.Bold
		}
		rows = append(rows, row.New(5).Add(
			col.New(1),
			col.New(7).Add(text.New(it.label, props.Text{Size: 8, Style: style, Top: 0.5})),
			col.New(4).Add(text.New(formatMoney(it.amount), props.Text{
				Size: 8, Style: style, Align: align.Right, Top: 0.5, Right: 1,
			})),
		))
	}
	return rows
}

// ratioRows tabla de indicadores con su semáforo.
func ratioRows(list []ratios.Ratio) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	rows := []core.Row{
		row.New(8).Add(
			h("Indicador", 4, align.Left),
			h("Fórmula", 4, align.Left),
			h("Valor", 2, align.Right),
			h("Estado", 2, align.Center),
		),
	}
	for _, r := range list {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 0.5})),
			col.New(4).Add(text.New(nonEmpty(r.Formula, "-"), props.Text{Size: 7, Top: 0.5, Color: colorGray})),
			col.New(2).Add(text.New(r.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
			col.New(2).Add(text.New(r.Label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 0.5, Color: bandColor(r.Band),
			})),
		))
	}
	return rows
}

// footerRow: resultado del cuadre + trazabilidad.
func footerRow(r *dto.StatementsReport) core.Row {
	check := "Activo = Pasivo + Patrimonio"
	color := colorGreen
	if !r.Balanced {
		check = "Descuadre de " + formatMoney(r.Difference) + " entre activo y pasivo + patrimonio"
		color = colorRed
	}
	return row.New(14).Add(col.New(12).Add(
		text.New(check, props.Text{Style: fontstyle.Bold, Size: 8, Color: color, Top: 1}),
		text.New(fmt.Sprintf("Plan Contable General Empresarial %s   |   Exportación %s",
			nonEmpty(r.PCGEVersion, "-"), nonEmpty(r.ExportID, "-")),
			props.Text{Size: 6.5, Color: colorGray, Top: 7}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func bandColor(b ratios.Band) *props.Color {
	switch b {
	case ratios.Green:
		return colorGreen
	case ratios.Red:
		return colorRed
	default:
		return colorYellow
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney importe con 2 decimales y comas de miles.
// Ej: 1234567.5 → "1,234,567.50", -25 → "-25.00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
