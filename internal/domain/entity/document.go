package entity

import "github.com/shopspring/decimal"

// AmendedDocument referencia al comprobante que se modifica (notas de crédito/débito).
type AmendedDocument struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Series string `json:"series"`
	Number string `json:"number"`
}

// PurchaseDocument comprobante de compra registrado en el Registro de Compras.
// Los importes ausentes se tratan como 0 al codificar.
type PurchaseDocument struct {
	CUO               string          `json:"cuo"`
	IssueDate         string          `json:"issue_date"`
	DueDate           string          `json:"due_date"`
	DocumentType      string          `json:"document_type"` // catálogo 10; "1" se emite "01"
	Series            string          `json:"series"`
	DUAYear           string          `json:"dua_year"`
	Number            string          `json:"number"`
	DailyTotal        decimal.Decimal `json:"daily_total"` // operaciones diarias sin derecho a crédito fiscal
	SupplierDocType   string          `json:"supplier_doc_type"`
	SupplierDocNumber string          `json:"supplier_doc_number"`
	SupplierName      string          `json:"supplier_name"`

	// Adquisiciones gravadas destinadas a operaciones gravadas (A), gravadas y no gravadas (B),
	// y solo no gravadas (C).
	TaxableBaseA decimal.Decimal `json:"taxable_base_a"`
	IGVA         decimal.Decimal `json:"igv_a"`
	TaxableBaseB decimal.Decimal `json:"taxable_base_b"`
	IGVB         decimal.Decimal `json:"igv_b"`
	TaxableBaseC decimal.Decimal `json:"taxable_base_c"`
	IGVC         decimal.Decimal `json:"igv_c"`
	NonTaxable   decimal.Decimal `json:"non_taxable"`
	ISC          decimal.Decimal `json:"isc"`
	ICBPER       decimal.Decimal `json:"icbper"` // impuesto a las bolsas de plástico
	OtherCharges decimal.Decimal `json:"other_charges"`
	Total        decimal.Decimal `json:"total"`

	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Amended      AmendedDocument `json:"amended"`

	DetractionDate   string `json:"detraction_date"`
	DetractionNumber string `json:"detraction_number"`
	RetentionFlag    string `json:"retention_flag"`
	GoodsClass       string `json:"goods_class"` // tabla 30

	ErrorExchangeRate    string `json:"error_exchange_rate"`
	ErrorNonLocated      string `json:"error_non_located"`
	ErrorExemptionWaived string `json:"error_exemption_waived"`
	ErrorDNISupplier     string `json:"error_dni_supplier"`
	PaymentIndicator     string `json:"payment_indicator"` // cancelado con medios de pago
	Status               string `json:"status"`
}

// SalesDocument comprobante emitido registrado en el Registro de Ventas e Ingresos.
type SalesDocument struct {
	CUO               string          `json:"cuo"`
	IssueDate         string          `json:"issue_date"`
	DueDate           string          `json:"due_date"`
	DocumentType      string          `json:"document_type"`
	Series            string          `json:"series"`
	Number            string          `json:"number"`
	DailyTotal        decimal.Decimal `json:"daily_total"`
	CustomerDocType   string          `json:"customer_doc_type"`
	CustomerDocNumber string          `json:"customer_doc_number"`
	CustomerName      string          `json:"customer_name"`

	ExportValue     decimal.Decimal `json:"export_value"`
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	TaxableDiscount decimal.Decimal `json:"taxable_discount"`
	IGV             decimal.Decimal `json:"igv"`
	IGVDiscount     decimal.Decimal `json:"igv_discount"`
	Exempt          decimal.Decimal `json:"exempt"`
	Unaffected      decimal.Decimal `json:"unaffected"`
	ISC             decimal.Decimal `json:"isc"`
	ICBPER          decimal.Decimal `json:"icbper"`
	OtherCharges    decimal.Decimal `json:"other_charges"`
	Total           decimal.Decimal `json:"total"`

	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Amended      AmendedDocument `json:"amended"`
	ContractID   string          `json:"contract_id"`

	ErrorExchangeRate string `json:"error_exchange_rate"`
	PaymentIndicator  string `json:"payment_indicator"`
	Status            string `json:"status"`
}
