package ple

import "fmt"

// IssueKind clasifica una degradación aplicada al codificar.
type IssueKind string

const (
	IssueMissing   IssueKind = "missing"   // campo obligatorio vacío, se emitió el valor por defecto
	IssueTruncated IssueKind = "truncated" // texto más largo que el ancho declarado
	IssueSanitized IssueKind = "sanitized" // contenía "|" o saltos de línea
	IssueMalformed IssueKind = "malformed" // monto no numérico, se emitió 0.00
)

// Issue degradación sobre un campo de una línea (Line es 1-based).
type Issue struct {
	Line  int       `json:"line"`
	Field string    `json:"field"`
	Kind  IssueKind `json:"kind"`
}

func (i Issue) String() string {
	return fmt.Sprintf("línea %d, campo %s: %s", i.Line, i.Field, i.Kind)
}

// Report resultado de validación de un libro: la salida siempre se produce,
// Report indica si fue con entrada degradada.
type Report struct {
	Issues []Issue `json:"issues"`
}

// Add agrega issues asignándoles el número de línea.
func (r *Report) Add(line int, issues ...Issue) {
	for _, is := range issues {
		is.Line = line
		r.Issues = append(r.Issues, is)
	}
}

// Degraded indica si hubo al menos una degradación.
func (r Report) Degraded() bool { return len(r.Issues) > 0 }

// Count devuelve cuántas degradaciones hay de un tipo.
func (r Report) Count(kind IssueKind) int {
	n := 0
	for _, is := range r.Issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}
