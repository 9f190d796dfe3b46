// Package ratios calcula indicadores financieros a partir de los estados y los clasifica en semáforo
// (verde, amarillo, rojo) según bandas fijas por indicador.
package ratios

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/statements"
)

// Band color del semáforo.
type Band string

const (
	Green  Band = "green"
	Yellow Band = "yellow"
	Red    Band = "red"
)

// Etiquetas del semáforo.
const (
	LabelHealthy        = "healthy"
	LabelNeedsAttention = "needs attention"
	LabelCritical       = "critical"
	LabelNoBenchmark    = "no benchmark"
)

// Nombres de los indicadores.
const (
	LiquidezCorriente = "liquidezCorriente"
	PruebaAcida       = "pruebaAcida"
	Endeudamiento     = "endeudamiento"
	Apalancamiento    = "apalancamiento"
	MargenBruto       = "margenBruto"
	MargenOperativo   = "margenOperativo"
	MargenNeto        = "margenNeto"
	ROA               = "roa"
	ROE               = "roe"
	RotacionActivos   = "rotacionActivos"
)

// Ratio indicador calculado y su clasificación.
type Ratio struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Band    Band            `json:"band"`
	Label   string          `json:"label"`
	Formula string          `json:"formula"`
}

// RatioSet indicadores en orden de presentación.
type RatioSet struct {
	Ratios []Ratio `json:"ratios"`
}

// ByName busca un indicador por nombre.
func (s RatioSet) ByName(name string) (Ratio, bool) {
	for _, r := range s.Ratios {
		if r.Name == name {
			return r, true
		}
	}
	return Ratio{}, false
}

var hundred = decimal.NewFromInt(100)

// Compute calcula todos los indicadores. Toda división con denominador cero devuelve 0.
// Márgenes, ROA y ROE se expresan en porcentaje.
func Compute(bs statements.BalanceSheet, is statements.IncomeStatement) RatioSet {
	values := []struct {
		name  string
		value decimal.Decimal
	}{
		{LiquidezCorriente, safeDiv(bs.ActivoCorriente, bs.PasivoCorriente)},
		{PruebaAcida, safeDiv(bs.ActivoCorriente.Sub(bs.Inventarios), bs.PasivoCorriente)},
		{Endeudamiento, safeDiv(bs.TotalPasivos, bs.TotalActivos)},
		{Apalancamiento, safeDiv(bs.TotalPasivos, bs.TotalPatrimonio)},
		{MargenBruto, safeDiv(is.UtilidadBruta, is.VentasNetas).Mul(hundred)},
		{MargenOperativo, safeDiv(is.UtilidadOperativa, is.VentasNetas).Mul(hundred)},
		{MargenNeto, safeDiv(is.UtilidadNeta, is.VentasNetas).Mul(hundred)},
		{ROA, safeDiv(is.UtilidadNeta, bs.TotalActivos).Mul(hundred)},
		{ROE, safeDiv(is.UtilidadNeta, bs.TotalPatrimonio).Mul(hundred)},
		{RotacionActivos, safeDiv(is.VentasNetas, bs.TotalActivos)},
	}

	set := RatioSet{Ratios: make([]Ratio, 0, len(values))}
	for _, v := range values {
		// la banda se decide con el valor calculado; solo el valor informado se redondea
		r := Evaluate(v.name, v.value)
		r.Value = v.value.Round(2)
		set.Ratios = append(set.Ratios, r)
	}
	return set
}

// Evaluate clasifica value con la tabla de bandas del indicador.
// Un indicador sin tabla devuelve amarillo, "no benchmark" y fórmula vacía.
func Evaluate(name string, value decimal.Decimal) Ratio {
	r := Ratio{Name: name, Value: value}
	th, ok := thresholds[name]
	if !ok {
		r.Band = Yellow
		r.Label = LabelNoBenchmark
		return r
	}
	r.Formula = th.formula
	v := value.InexactFloat64()
	switch {
	case th.green.contains(v):
		r.Band, r.Label = Green, LabelHealthy
	case th.yellow.contains(v):
		r.Band, r.Label = Yellow, LabelNeedsAttention
	default:
		r.Band, r.Label = Red, LabelCritical
	}
	return r
}

func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// interval rango cerrado [lo, hi].
type interval struct {
	lo, hi float64
}

func (i interval) contains(v float64) bool {
	return v >= i.lo && v <= i.hi
}

type threshold struct {
	green, yellow interval
	formula       string
}

var inf = math.Inf(1)

// Bandas de referencia. Verde se evalúa antes que amarillo, así los extremos compartidos quedan en verde.
var thresholds = map[string]threshold{
	LiquidezCorriente: {interval{1.5, inf}, interval{1.0, 1.5}, "activo corriente / pasivo corriente"},
	PruebaAcida:       {interval{1.0, inf}, interval{0.7, 1.0}, "(activo corriente - inventarios) / pasivo corriente"},
	Endeudamiento:     {interval{0, 0.5}, interval{0.5, 0.7}, "total pasivos / total activos"},
	Apalancamiento:    {interval{0, 1.0}, interval{1.0, 2.0}, "total pasivos / patrimonio"},
	MargenBruto:       {interval{30, inf}, interval{15, 30}, "utilidad bruta / ventas netas × 100"},
	MargenOperativo:   {interval{10, inf}, interval{5, 10}, "utilidad operativa / ventas netas × 100"},
	MargenNeto:        {interval{5, inf}, interval{2, 5}, "utilidad neta / ventas netas × 100"},
	ROA:               {interval{5, inf}, interval{2, 5}, "utilidad neta / total activos × 100"},
	ROE:               {interval{10, inf}, interval{5, 10}, "utilidad neta / patrimonio × 100"},
	RotacionActivos:   {interval{1.0, inf}, interval{0.5, 1.0}, "ventas netas / total activos"},
}
