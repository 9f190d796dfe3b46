package entity

import "github.com/shopspring/decimal"

// Party emisor o receptor de un comprobante electrónico.
type Party struct {
	DocType     string `json:"doc_type"` // catálogo 06 (6 = RUC)
	DocNumber   string `json:"doc_number"`
	Name        string `json:"name"`       // razón social
	TradeName   string `json:"trade_name"` // nombre comercial
	Address     string `json:"address"`
	Ubigeo      string `json:"ubigeo"`
	AddressCode string `json:"address_code"` // código de establecimiento anexo; vacío = 0000
}

// InvoiceItem línea del comprobante.
type InvoiceItem struct {
	Code               string          `json:"code"`
	Description        string          `json:"description"`
	UnitCode           string          `json:"unit_code"` // catálogo 03; vacío = NIU
	Quantity           decimal.Decimal `json:"quantity"`
	UnitValue          decimal.Decimal `json:"unit_value"` // valor unitario sin IGV
	TaxAffectationCode string          `json:"tax_affectation_code"`
}

// InvoiceTotals importes totales declarados por el colaborador. Los valores en cero se derivan de las líneas.
type InvoiceTotals struct {
	TaxableAmount    decimal.Decimal `json:"taxable_amount"`
	ExemptAmount     decimal.Decimal `json:"exempt_amount"`
	UnaffectedAmount decimal.Decimal `json:"unaffected_amount"`
	IGV              decimal.Decimal `json:"igv"`
	Total            decimal.Decimal `json:"total"`
}

// DocumentReference comprobante afectado por una nota de crédito o débito.
type DocumentReference struct {
	Series       string `json:"series"`
	Number       string `json:"number"`
	DocumentType string `json:"document_type"`
	ReasonCode   string `json:"reason_code"` // catálogo 09 / 10
	Reason       string `json:"reason"`
}

// TaxInvoiceRecord comprobante de pago electrónico (factura, boleta, nota de crédito o débito).
type TaxInvoiceRecord struct {
	Series           string             `json:"series"`
	Number           string             `json:"number"`
	DocumentTypeCode string             `json:"document_type_code"`
	IssueDate        string             `json:"issue_date"` // AAAA-MM-DD
	IssueTime        string             `json:"issue_time"` // HH:MM:SS
	DueDate          string             `json:"due_date"`
	Currency         string             `json:"currency"`
	IGVRate          decimal.Decimal    `json:"igv_rate"` // cero = 0.18
	Issuer           Party              `json:"issuer"`
	Recipient        Party              `json:"recipient"`
	Items            []InvoiceItem      `json:"items"`
	Totals           InvoiceTotals      `json:"totals"`
	Reference        *DocumentReference `json:"reference,omitempty"`
}

// ID identificador del comprobante: serie-número.
func (r TaxInvoiceRecord) ID() string {
	return r.Series + "-" + r.Number
}
