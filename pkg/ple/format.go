// Package ple contiene los codificadores primitivos del Programa de Libros Electrónicos (PLE) de SUNAT:
// relleno de ancho fijo, montos a 2 decimales, fechas DD/MM/AAAA y armado de líneas separadas por "|".
//
// Ninguna función de este paquete falla: la entrada ausente o mal formada se degrada a un valor por
// defecto ("" o "0.00") para que cada línea conserve la cantidad de campos que exige el validador PLE.
package ple

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Delimiter separador de campos de los libros PLE.
const Delimiter = "|"

// FieldKind tipo de dato de un campo PLE; define el codificador que se aplica.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindDate
)

func (k FieldKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "text"
	}
}

// FieldSpec unidad que consume el formateador: un valor, su longitud máxima y su tipo.
// Name solo se usa para el reporte de degradaciones. Required marca los campos obligatorios del
// formato: si llegan vacíos se emite el valor por defecto y se reporta IssueMissing.
type FieldSpec struct {
	Name      string
	Value     any
	MaxLength int
	Kind      FieldKind
	Required  bool
}

// Req devuelve una copia del campo marcada como obligatoria.
func (f FieldSpec) Req() FieldSpec {
	f.Required = true
	return f
}

// Text construye un campo de texto.
func Text(name string, value any, maxLength int) FieldSpec {
	return FieldSpec{Name: name, Value: value, MaxLength: maxLength, Kind: KindText}
}

// Number construye un campo numérico (monto a 2 decimales).
func Number(name string, value any, maxLength int) FieldSpec {
	return FieldSpec{Name: name, Value: value, MaxLength: maxLength, Kind: KindNumber}
}

// Date construye un campo de fecha (entrada AAAA-MM-DD).
func Date(name string, value any) FieldSpec {
	return FieldSpec{Name: name, Value: value, MaxLength: 10, Kind: KindDate}
}

// PadLeft rellena a la izquierda con '0' hasta length.
// Si el valor ya mide length o más, se conservan los PRIMEROS length caracteres (no los últimos).
func PadLeft(value any, length int) string {
	return PadLeftWith(value, length, '0')
}

// PadLeftWith igual que PadLeft con carácter de relleno configurable.
func PadLeftWith(value any, length int, fill rune) string {
	s := Stringify(value)
	if length <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(s)
	if n >= length {
		return truncateRunes(s, length)
	}
	return strings.Repeat(string(fill), length-n) + s
}

// FormatAmount devuelve el monto con 2 decimales fijos. nil, NaN, ±Inf o texto no numérico → "0.00".
// Los negativos no reciben tratamiento especial. Un float se toma por su representación decimal más
// corta (1.005 → "1.01") y redondea la mitad alejándose de cero, no sobre su valor binario.
func FormatAmount(v any) string {
	d, ok := toDecimal(v)
	if !ok {
		return "0.00"
	}
	return d.StringFixed(2)
}

// FormatDate convierte AAAA-MM-DD en DD/MM/AAAA. Cualquier texto que no tenga exactamente
// tres partes separadas por "-" se devuelve sin cambios (incluido ""). No valida el calendario.
func FormatDate(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatLine codifica cada campo según su tipo, los une con "|" y agrega el "|" final.
func FormatLine(fields []FieldSpec) string {
	line, _ := FormatLineReport(fields)
	return line
}

// FormatLineReport igual que FormatLine pero además devuelve las degradaciones aplicadas
// (textos truncados o saneados). El número de línea de cada Issue queda en 0; lo asigna el llamador.
func FormatLineReport(fields []FieldSpec) (string, []Issue) {
	var b strings.Builder
	var issues []Issue
	for _, f := range fields {
		b.WriteString(encodeField(f, &issues))
		b.WriteString(Delimiter)
	}
	return b.String(), issues
}

func encodeField(f FieldSpec, issues *[]Issue) string {
	if f.Required && isEmpty(f) {
		*issues = append(*issues, Issue{Field: f.Name, Kind: IssueMissing})
	}
	switch f.Kind {
	case KindNumber:
		if f.Value != nil {
			if _, ok := toDecimal(f.Value); !ok {
				*issues = append(*issues, Issue{Field: f.Name, Kind: IssueMalformed})
			}
		}
		return FormatAmount(f.Value)
	case KindDate:
		return FormatDate(sanitize(Stringify(f.Value)))
	default:
		raw := Stringify(f.Value)
		s := sanitize(raw)
		if s != raw {
			*issues = append(*issues, Issue{Field: f.Name, Kind: IssueSanitized})
		}
		if f.MaxLength > 0 && utf8.RuneCountInString(s) > f.MaxLength {
			*issues = append(*issues, Issue{Field: f.Name, Kind: IssueTruncated})
			s = truncateRunes(s, f.MaxLength)
		}
		return s
	}
}

func isEmpty(f FieldSpec) bool {
	if f.Kind == KindNumber {
		_, ok := toDecimal(f.Value)
		return !ok && Stringify(f.Value) == ""
	}
	return strings.TrimSpace(Stringify(f.Value)) == ""
}

// sanitize reemplaza por espacio los caracteres que romperían la cantidad de campos o de líneas.
func sanitize(s string) string {
	if !strings.ContainsAny(s, "|\r\n\t") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '|', '\r', '\n', '\t':
			return ' '
		}
		return r
	}, s)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Stringify convierte un valor arbitrario a texto; nil → "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case decimal.Decimal:
		return t.String()
	case *decimal.Decimal:
		if t == nil {
			return ""
		}
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero, false
		}
		return *t, true
	case decimal.NullDecimal:
		return t.Decimal, t.Valid
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case int32:
		return decimal.NewFromInt32(t), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
