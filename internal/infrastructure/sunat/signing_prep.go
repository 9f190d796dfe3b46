package sunat

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
)

// SigningInput datos que se entregan al firmador externo.
type SigningInput struct {
	Canonical    []byte // documento canonicalizado (C14N)
	DigestBase64 string // SHA-256 del documento canonicalizado, en base64
}

// PrepareForSigning verifica que el XML tenga el ext:ExtensionContent vacío donde el firmador
// inyectará ds:Signature y calcula el digest del documento canonicalizado.
func PrepareForSigning(xmlBytes []byte) (*SigningInput, error) {
	if len(xmlBytes) == 0 {
		return nil, fmt.Errorf("sunat: XML vacío")
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlBytes); err != nil {
		return nil, fmt.Errorf("sunat: parsear XML: %w", err)
	}
	slot, err := signatureSlot(doc)
	if err != nil {
		return nil, err
	}
	if len(slot.ChildElements()) > 0 {
		return nil, fmt.Errorf("sunat: el ext:ExtensionContent ya contiene una firma")
	}

	canonical, err := canonicalizeXML(xmlBytes)
	if err != nil {
		return nil, fmt.Errorf("sunat: canonicalizar XML: %w", err)
	}
	digest := sha256.Sum256(canonical)
	return &SigningInput{
		Canonical:    canonical,
		DigestBase64: base64.StdEncoding.EncodeToString(digest[:]),
	}, nil
}

// signatureSlot ext:UBLExtensions/ext:UBLExtension/ext:ExtensionContent, primer hijo de la raíz.
func signatureSlot(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("sunat: documento sin raíz")
	}
	children := root.ChildElements()
	if len(children) == 0 || children[0].Tag != "UBLExtensions" {
		return nil, fmt.Errorf("sunat: ext:UBLExtensions debe ser el primer hijo de %s", root.Tag)
	}
	for _, ext := range children[0].SelectElements("UBLExtension") {
		if ec := ext.SelectElement("ExtensionContent"); ec != nil {
			return ec, nil
		}
	}
	return nil, fmt.Errorf("sunat: no se encontró ext:ExtensionContent para la firma")
}

// canonicalizeXML C14N del documento; la declaración XML no forma parte de la forma canónica.
func canonicalizeXML(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("<?xml")) {
		if end := bytes.Index(data, []byte("?>")); end >= 0 {
			data = bytes.TrimSpace(data[end+2:])
		}
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
