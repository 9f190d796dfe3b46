package sunat

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/contasunat/internal/domain/entity"
)

// CompressXMLToZip empaqueta el XML en un archivo ZIP en memoria con una única entrada.
// SUNAT exige que el ZIP y el XML compartan el nombre base:
//
//	{RUC}-{TIPO}-{SERIE}-{NUMERO}.xml
func CompressXMLToZip(xmlBytes []byte, xmlFilename string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	fw, err := zw.Create(xmlFilename)
	if err != nil {
		return nil, fmt.Errorf("zip: crear entrada %s: %w", xmlFilename, err)
	}
	if _, err := fw.Write(xmlBytes); err != nil {
		return nil, fmt.Errorf("zip: escribir XML: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

// SUNATFilenames nombres del XML y del ZIP del comprobante.
// Ejemplo: 20100066603-01-F001-00000123
func SUNATFilenames(rec *entity.TaxInvoiceRecord) (xmlName, zipName string) {
	ruc := nonDigit.ReplaceAllString(rec.Issuer.DocNumber, "")
	base := strings.Join([]string{
		ruc,
		invoiceTypeCode(rec.DocumentTypeCode),
		strings.ToUpper(strings.TrimSpace(rec.Series)),
		strings.TrimSpace(rec.Number),
	}, "-")
	return base + ".xml", base + ".zip"
}
