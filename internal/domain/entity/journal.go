package entity

import "github.com/shopspring/decimal"

// JournalEntry línea de asiento contable tal como la entrega el colaborador de registro.
// Alimenta el Libro Diario (orden de entrada) y el Libro Mayor (ordenado por cuenta y fecha).
// Fechas en formato AAAA-MM-DD.
type JournalEntry struct {
	CUO                string          `json:"cuo"`                 // código único de operación
	AccountCode        string          `json:"account_code"`        // cuenta PCGE
	OperationUnit      string          `json:"operation_unit"`      // unidad de operación
	CostCenter         string          `json:"cost_center"`         // centro de costos
	Currency           string          `json:"currency"`            // ISO 4217; vacío = PEN
	IDDocType          string          `json:"id_doc_type"`         // catálogo 06
	IDDocNumber        string          `json:"id_doc_number"`       // documento del tercero
	VoucherType        string          `json:"voucher_type"`        // catálogo 10 (tipo de comprobante)
	Series             string          `json:"series"`
	Number             string          `json:"number"`
	Date               string          `json:"date"`                // fecha contable
	DueDate            string          `json:"due_date"`
	OperationDate      string          `json:"operation_date"`
	Narrative          string          `json:"narrative"`           // glosa
	ReferenceNarrative string          `json:"reference_narrative"` // glosa referencial
	Debit              decimal.Decimal `json:"debit"`
	Credit             decimal.Decimal `json:"credit"`
	StructuredData     string          `json:"structured_data"`     // dato estructurado (libro/campo origen)
	Status             string          `json:"status"`              // 1 = del periodo; vacío = 1
}
