package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contasunat/internal/application/dto"
	"github.com/jhoicas/contasunat/internal/domain"
	"github.com/jhoicas/contasunat/internal/domain/entity"
	infrasunat "github.com/jhoicas/contasunat/internal/infrastructure/sunat"
	"github.com/jhoicas/contasunat/pkg/logger"
	"github.com/jhoicas/contasunat/pkg/sunat"
)

// InvoiceXMLUseCase genera el XML UBL 2.1 sin firmar de un comprobante y lo deja listo para el
// firmador externo (digest del documento canónico) o empaquetado en el ZIP de envío.
type InvoiceXMLUseCase struct {
	builder *infrasunat.UBLBuilderService
	igvRate decimal.Decimal
	log     *logger.Logger
}

// NewInvoiceXMLUseCase construye el caso de uso. igvRate se aplica a los comprobantes sin tasa.
func NewInvoiceXMLUseCase(builder *infrasunat.UBLBuilderService, igvRate decimal.Decimal, log *logger.Logger) *InvoiceXMLUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceXMLUseCase{builder: builder, igvRate: igvRate, log: log}
}

// BuildXML valida lo mínimo, construye el XML y calcula el digest para la firma.
// Un RUC de emisor con dígito verificador inválido solo se registra como advertencia.
func (uc *InvoiceXMLUseCase) BuildXML(ctx context.Context, rec *entity.TaxInvoiceRecord) (*dto.InvoiceXMLResult, error) {
	xmlBytes, prepared, err := uc.build(rec)
	if err != nil {
		return nil, err
	}
	in, err := infrasunat.PrepareForSigning(xmlBytes)
	if err != nil {
		return nil, fmt.Errorf("comprobante: preparar firma: %w", err)
	}
	xmlName, zipName := infrasunat.SUNATFilenames(prepared)

	uc.log.Info().
		Str("id", prepared.ID()).
		Str("type", prepared.DocumentTypeCode).
		Str("file", xmlName).
		Int("items", len(prepared.Items)).
		Msg("XML de comprobante generado")

	return &dto.InvoiceXMLResult{
		FileName:     xmlName,
		ZipName:      zipName,
		XML:          string(xmlBytes),
		DigestBase64: in.DigestBase64,
	}, nil
}

// BuildZip construye el XML y lo empaqueta en {RUC}-{TT}-{SERIE}-{NUMERO}.zip.
func (uc *InvoiceXMLUseCase) BuildZip(ctx context.Context, rec *entity.TaxInvoiceRecord) (zipBytes []byte, zipName string, err error) {
	xmlBytes, prepared, err := uc.build(rec)
	if err != nil {
		return nil, "", err
	}
	xmlName, zipName := infrasunat.SUNATFilenames(prepared)
	zipBytes, err = infrasunat.CompressXMLToZip(xmlBytes, xmlName)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: empaquetar ZIP: %w", err)
	}
	uc.log.Info().Str("id", prepared.ID()).Str("file", zipName).Msg("ZIP de comprobante generado")
	return zipBytes, zipName, nil
}

// build trabaja sobre una copia del registro para no alterar el del llamador.
func (uc *InvoiceXMLUseCase) build(rec *entity.TaxInvoiceRecord) ([]byte, *entity.TaxInvoiceRecord, error) {
	if err := validateInvoice(rec); err != nil {
		return nil, nil, err
	}
	prepared := *rec
	if prepared.IGVRate.IsZero() {
		prepared.IGVRate = uc.igvRate
	}
	if err := sunat.ValidateRUC(prepared.Issuer.DocNumber); err != nil {
		uc.log.Warn().Err(err).Str("ruc", prepared.Issuer.DocNumber).Str("id", prepared.ID()).
			Msg("RUC del emisor no supera la validación")
	}

	xmlBytes, err := uc.builder.Build(&prepared)
	if err != nil {
		return nil, nil, fmt.Errorf("comprobante: construir XML: %w", err)
	}
	return xmlBytes, &prepared, nil
}

func validateInvoice(rec *entity.TaxInvoiceRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: comprobante vacío", domain.ErrInvalidInput)
	}
	var missing []string
	if strings.TrimSpace(rec.Series) == "" {
		missing = append(missing, "series")
	}
	if strings.TrimSpace(rec.Number) == "" {
		missing = append(missing, "number")
	}
	if strings.TrimSpace(rec.IssueDate) == "" {
		missing = append(missing, "issue_date")
	}
	if strings.TrimSpace(rec.Issuer.DocNumber) == "" {
		missing = append(missing, "issuer.doc_number")
	}
	if len(rec.Items) == 0 {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: faltan %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
