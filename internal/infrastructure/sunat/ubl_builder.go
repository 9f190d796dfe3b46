package sunat

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/pkg/ple"
	"github.com/jhoicas/contasunat/pkg/sunat"
)

// Namespaces UBL 2.1 usados por los comprobantes electrónicos SUNAT.
const (
	NsInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NsDebitNote  = "urn:oasis:names:specification:ubl:schema:xsd:DebitNote-2"
	// Common Aggregate Components
	NsCac = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	// Common Basic Components
	NsCbc = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	// Extension Components
	NsExt = "urn:oasis:names:specification:ubl:schema:xsd:CommonExtensionComponents-2"
	// XML Digital Signature
	NsDs = "http://www.w3.org/2000/09/xmldsig#"

	ublVersion      = "2.1"
	customizationID = "2.0"
	// cac:Signature enlaza con el ds:Signature que agrega el firmador externo.
	SignatureID  = "SignatureSP"
	SignatureURI = "#" + SignatureID

	schemeUNECE5305 = "UN/ECE 5305"
	schemeUNECE5153 = "UN/ECE 5153"
	defaultAddress  = "0000"
)

var (
	hundred        = decimal.NewFromInt(100)
	defaultIGVRate = decimal.RequireFromString(sunat.DefaultIGVRate)
)

// variant raíz, namespace y nombres de línea/cantidad por tipo de comprobante.
type variant struct {
	root, namespace, line, quantity, monetaryTotal string
}

func variantFor(docType string) variant {
	switch docType {
	case sunat.DocTypeCreditNote:
		return variant{"CreditNote", NsCreditNote, "CreditNoteLine", "CreditedQuantity", "LegalMonetaryTotal"}
	case sunat.DocTypeDebitNote:
		return variant{"DebitNote", NsDebitNote, "DebitNoteLine", "DebitedQuantity", "RequestedMonetaryTotal"}
	default:
		return variant{"Invoice", NsInvoice, "InvoiceLine", "InvoicedQuantity", "LegalMonetaryTotal"}
	}
}

// UBLBuilderService construye el XML UBL 2.1 de facturas, boletas y notas (sin firma).
// El primer hijo de la raíz es ext:UBLExtensions con un ext:ExtensionContent vacío para el firmador.
type UBLBuilderService struct{}

// NewUBLBuilderService crea el servicio.
func NewUBLBuilderService() *UBLBuilderService {
	return &UBLBuilderService{}
}

// Build genera el []byte del comprobante. Todo el texto libre se escapa; todo importe pasa por el
// formateador de 2 decimales; la moneda de cada atributo currencyID sale del comprobante.
func (s *UBLBuilderService) Build(rec *entity.TaxInvoiceRecord) ([]byte, error) {
	doc, err := s.BuildDocument(rec)
	if err != nil {
		return nil, err
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sunat: serializar XML: %w", err)
	}
	return out, nil
}

// BuildDocument igual que Build pero devuelve el árbol etree.
func (s *UBLBuilderService) BuildDocument(rec *entity.TaxInvoiceRecord) (*etree.Document, error) {
	if rec == nil {
		return nil, fmt.Errorf("sunat: comprobante nil")
	}
	v := variantFor(rec.DocumentTypeCode)
	b := newInvoiceContext(rec)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(v.root)
	root.CreateAttr("xmlns", v.namespace)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)
	root.CreateAttr("xmlns:ds", NsDs)
	root.CreateAttr("xmlns:ext", NsExt)

	// ---- CRÍTICO: ext:UBLExtensions siempre como primer hijo (el firmador inyecta ds:Signature aquí)
	root.CreateElement("ext:UBLExtensions").
		CreateElement("ext:UBLExtension").
		CreateElement("ext:ExtensionContent")

	writeCbc(root, "UBLVersionID", ublVersion)
	writeCbc(root, "CustomizationID", customizationID)
	writeCbc(root, "ID", rec.ID())
	writeCbc(root, "IssueDate", rec.IssueDate)
	if rec.IssueTime != "" {
		writeCbc(root, "IssueTime", rec.IssueTime)
	}

	isNote := rec.DocumentTypeCode == sunat.DocTypeCreditNote || rec.DocumentTypeCode == sunat.DocTypeDebitNote
	if !isNote {
		if rec.DueDate != "" {
			writeCbc(root, "DueDate", rec.DueDate)
		}
		typeCode := writeCbc(root, "InvoiceTypeCode", invoiceTypeCode(rec.DocumentTypeCode))
		typeCode.CreateAttr("listID", sunat.OperationInternalSale)
	}
	writeCbc(root, "DocumentCurrencyCode", b.currency)
	writeCbc(root, "LineCountNumeric", fmt.Sprint(len(rec.Items)))
	if isNote {
		s.writeNoteReference(root, rec)
	}

	s.writeSignature(root, rec.Issuer)
	s.writeParty(root.CreateElement("cac:AccountingSupplierParty"), rec.Issuer, true)
	s.writeParty(root.CreateElement("cac:AccountingCustomerParty"), rec.Recipient, false)
	s.writeTaxTotal(root, b)
	s.writeMonetaryTotal(root, v, b)
	for i, line := range b.lines {
		s.writeLine(root, v, b, i+1, line)
	}
	return doc, nil
}

func invoiceTypeCode(code string) string {
	if code == "" {
		return sunat.DocTypeInvoice
	}
	return code
}

// writeNoteReference motivo de la nota (DiscrepancyResponse) y comprobante afectado (BillingReference).
func (s *UBLBuilderService) writeNoteReference(root *etree.Element, rec *entity.TaxInvoiceRecord) {
	ref := entity.DocumentReference{}
	if rec.Reference != nil {
		ref = *rec.Reference
	}
	affected := ref.Series + "-" + ref.Number

	dr := root.CreateElement("cac:DiscrepancyResponse")
	writeCbc(dr, "ReferenceID", affected)
	writeCbc(dr, "ResponseCode", ref.ReasonCode)
	writeCbc(dr, "Description", ref.Reason)

	idr := root.CreateElement("cac:BillingReference").CreateElement("cac:InvoiceDocumentReference")
	writeCbc(idr, "ID", affected)
	writeCbc(idr, "DocumentTypeCode", ref.DocumentType)
}

// writeSignature bloque cac:Signature que enlaza al ds:Signature del firmador externo.
func (s *UBLBuilderService) writeSignature(root *etree.Element, issuer entity.Party) {
	sig := root.CreateElement("cac:Signature")
	writeCbc(sig, "ID", SignatureID)
	party := sig.CreateElement("cac:SignatoryParty")
	writeCbc(party.CreateElement("cac:PartyIdentification"), "ID", issuer.DocNumber)
	writeCbc(party.CreateElement("cac:PartyName"), "Name", issuer.Name)
	ref := sig.CreateElement("cac:DigitalSignatureAttachment").CreateElement("cac:ExternalReference")
	writeCbc(ref, "URI", SignatureURI)
}

func (s *UBLBuilderService) writeParty(parent *etree.Element, p entity.Party, supplier bool) {
	party := parent.CreateElement("cac:Party")
	id := writeCbc(party.CreateElement("cac:PartyIdentification"), "ID", p.DocNumber)
	id.CreateAttr("schemeID", p.DocType)

	name := p.TradeName
	if name == "" {
		name = p.Name
	}
	if name != "" {
		writeCbc(party.CreateElement("cac:PartyName"), "Name", name)
	}

	legal := party.CreateElement("cac:PartyLegalEntity")
	writeCbc(legal, "RegistrationName", p.Name)
	if supplier || p.Address != "" {
		addr := legal.CreateElement("cac:RegistrationAddress")
		if p.Ubigeo != "" {
			writeCbc(addr, "ID", p.Ubigeo)
		}
		if supplier {
			code := p.AddressCode
			if code == "" {
				code = defaultAddress
			}
			writeCbc(addr, "AddressTypeCode", code)
		}
		if p.Address != "" {
			writeCbc(addr.CreateElement("cac:AddressLine"), "Line", p.Address)
		}
	}
}

// writeTaxTotal total de impuestos con un cac:TaxSubtotal por cada categoría con base distinta de cero.
func (s *UBLBuilderService) writeTaxTotal(root *etree.Element, b *invoiceContext) {
	tt := root.CreateElement("cac:TaxTotal")
	writeCbcAmount(tt, "TaxAmount", b.igv, b.currency)

	for _, cat := range []struct {
		base, tax decimal.Decimal
		scheme    sunat.TaxScheme
	}{
		{b.taxable, b.igv, sunat.SchemeIGV},
		{b.exempt, decimal.Zero, sunat.SchemeEXO},
		{b.unaffected, decimal.Zero, sunat.SchemeINA},
	} {
		if cat.base.IsZero() {
			continue
		}
		sub := tt.CreateElement("cac:TaxSubtotal")
		writeCbcAmount(sub, "TaxableAmount", cat.base, b.currency)
		writeCbcAmount(sub, "TaxAmount", cat.tax, b.currency)
		writeTaxCategory(sub, cat.scheme, b.percentFor(cat.scheme), "")
	}
}

func (s *UBLBuilderService) writeMonetaryTotal(root *etree.Element, v variant, b *invoiceContext) {
	mt := root.CreateElement("cac:" + v.monetaryTotal)
	writeCbcAmount(mt, "LineExtensionAmount", b.lineExtension, b.currency)
	writeCbcAmount(mt, "TaxInclusiveAmount", b.total, b.currency)
	writeCbcAmount(mt, "PayableAmount", b.total, b.currency)
}

func (s *UBLBuilderService) writeLine(root *etree.Element, v variant, b *invoiceContext, n int, l lineAmounts) {
	el := root.CreateElement("cac:" + v.line)
	writeCbc(el, "ID", fmt.Sprint(n))
	qty := writeCbc(el, v.quantity, ple.FormatAmount(l.item.Quantity))
	qty.CreateAttr("unitCode", l.unitCode)
	qty.CreateAttr("unitCodeListID", schemeUNECE5153)
	writeCbcAmount(el, "LineExtensionAmount", l.extension, b.currency)

	acp := el.CreateElement("cac:PricingReference").CreateElement("cac:AlternativeConditionPrice")
	writeCbcAmount(acp, "PriceAmount", l.priceWithTax, b.currency)
	writeCbc(acp, "PriceTypeCode", "01")

	tt := el.CreateElement("cac:TaxTotal")
	writeCbcAmount(tt, "TaxAmount", l.tax, b.currency)
	sub := tt.CreateElement("cac:TaxSubtotal")
	writeCbcAmount(sub, "TaxableAmount", l.extension, b.currency)
	writeCbcAmount(sub, "TaxAmount", l.tax, b.currency)
	writeTaxCategory(sub, l.scheme, b.percentFor(l.scheme), l.affectation)

	item := el.CreateElement("cac:Item")
	writeCbc(item, "Description", l.item.Description)
	if l.item.Code != "" {
		writeCbc(item.CreateElement("cac:SellersItemIdentification"), "ID", l.item.Code)
	}
	writeCbcAmount(el.CreateElement("cac:Price"), "PriceAmount", l.item.UnitValue, b.currency)
}

// writeTaxCategory cac:TaxCategory con su cac:TaxScheme. affectation vacío omite TaxExemptionReasonCode
// (nivel documento).
func writeTaxCategory(parent *etree.Element, scheme sunat.TaxScheme, percent decimal.Decimal, affectation string) {
	cat := parent.CreateElement("cac:TaxCategory")
	id := writeCbc(cat, "ID", scheme.CategoryID)
	id.CreateAttr("schemeID", schemeUNECE5305)
	writeCbc(cat, "Percent", ple.FormatAmount(percent))
	if affectation != "" {
		writeCbc(cat, "TaxExemptionReasonCode", affectation)
	}
	ts := cat.CreateElement("cac:TaxScheme")
	writeCbc(ts, "ID", scheme.ID)
	writeCbc(ts, "Name", scheme.Name)
	writeCbc(ts, "TaxTypeCode", scheme.TypeCode)
}

// writeCbc agrega <cbc:name>value</cbc:name>; etree escapa los cinco caracteres reservados.
func writeCbc(parent *etree.Element, name, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + name)
	el.SetText(strings.TrimSpace(value))
	return el
}

// writeCbcAmount importe a 2 decimales con currencyID.
func writeCbcAmount(parent *etree.Element, name string, amount decimal.Decimal, currency string) *etree.Element {
	el := writeCbc(parent, name, ple.FormatAmount(amount))
	el.CreateAttr("currencyID", currency)
	return el
}
