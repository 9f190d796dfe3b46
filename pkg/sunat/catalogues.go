// Package sunat contiene catálogos y validaciones alineados a los anexos de Comprobantes de Pago
// Electrónicos (UBL 2.1) de SUNAT (Perú).
package sunat

// =============================================================================
// Catálogo 01 - Código de tipo de documento
// =============================================================================

const (
	DocTypeInvoice    = "01" // Factura
	DocTypeReceipt    = "03" // Boleta de venta
	DocTypeCreditNote = "07" // Nota de crédito
	DocTypeDebitNote  = "08" // Nota de débito
)

// =============================================================================
// Catálogo 06 - Tipo de documento de identidad
// =============================================================================

const (
	IdentityNonDomiciled = "0" // Doc. trib. no dom. sin RUC
	IdentityDNI          = "1"
	IdentityForeignCard  = "4" // Carnet de extranjería
	IdentityRUC          = "6"
	IdentityPassport     = "7"
	IdentityNone         = "-" // Varios (ventas menores)
)

// =============================================================================
// Catálogo 07 - Tipo de afectación del IGV (códigos base)
// =============================================================================

const (
	AffectationTaxed      = "10" // Gravado - Operación onerosa
	AffectationExempt     = "20" // Exonerado - Operación onerosa
	AffectationUnaffected = "30" // Inafecto - Operación onerosa
)

// =============================================================================
// Catálogo 05 - Códigos de tipos de tributos
// =============================================================================

// TaxScheme identificación del tributo en cac:TaxScheme y la categoría de cac:TaxCategory.
type TaxScheme struct {
	CategoryID string // S, E, O (UN/ECE 5305)
	ID         string // código de tributo
	Name       string
	TypeCode   string // código internacional
}

var (
	SchemeIGV = TaxScheme{CategoryID: "S", ID: "1000", Name: "IGV", TypeCode: "VAT"}
	SchemeEXO = TaxScheme{CategoryID: "E", ID: "9997", Name: "EXO", TypeCode: "VAT"}
	SchemeINA = TaxScheme{CategoryID: "O", ID: "9998", Name: "INA", TypeCode: "FRE"}
)

// SchemeForAffectation búsqueda fija de 3 vías: 10→IGV, 20→EXO, 30→INA.
// Códigos fuera del catálogo base se tratan como gravados.
func SchemeForAffectation(code string) TaxScheme {
	switch code {
	case AffectationExempt:
		return SchemeEXO
	case AffectationUnaffected:
		return SchemeINA
	default:
		return SchemeIGV
	}
}

// =============================================================================
// Catálogo 09 / 10 - Tipos de nota (códigos frecuentes)
// =============================================================================

const (
	CreditNoteCancellation = "01" // Anulación de la operación
	CreditNoteDiscount     = "04" // Descuento global
	DebitNoteInterest      = "01" // Intereses por mora
)

// =============================================================================
// Catálogo 51 - Tipo de operación
// =============================================================================

const OperationInternalSale = "0101" // Venta interna

// =============================================================================
// Catálogo 03 - Unidades de medida (frecuentes)
// =============================================================================

const (
	UnitProduct = "NIU" // Unidad (bienes)
	UnitService = "ZZ"  // Unidad (servicios)
	UnitKilo    = "KGM"
)

// Monedas (ISO 4217).
const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)

// Tasas vigentes por defecto.
const (
	DefaultIGVRate       = "0.18"
	DefaultIncomeTaxRate = "0.295"
)
