package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

var _ repository.RegisterRepository = (*RegisterRepo)(nil)

// RegisterRepo comprobantes de compras y ventas anotados en los registros del periodo.
type RegisterRepo struct {
	q Querier
}

// NewRegisterRepository construye el adaptador. Acepta pool o tx (Querier).
func NewRegisterRepository(q Querier) *RegisterRepo {
	return &RegisterRepo{q: q}
}

const purchasesQuery = `
	SELECT p.cuo,
	       to_char(p.issue_date, 'YYYY-MM-DD'),
	       COALESCE(to_char(p.due_date, 'YYYY-MM-DD'), ''),
	       p.document_type, COALESCE(p.series, ''), COALESCE(p.dua_year, ''), p.number,
	       COALESCE(p.daily_total, 0),
	       COALESCE(p.supplier_doc_type, ''), COALESCE(p.supplier_doc_number, ''), COALESCE(p.supplier_name, ''),
	       COALESCE(p.taxable_base_a, 0), COALESCE(p.igv_a, 0),
	       COALESCE(p.taxable_base_b, 0), COALESCE(p.igv_b, 0),
	       COALESCE(p.taxable_base_c, 0), COALESCE(p.igv_c, 0),
	       COALESCE(p.non_taxable, 0), COALESCE(p.isc, 0), COALESCE(p.icbper, 0),
	       COALESCE(p.other_charges, 0), COALESCE(p.total, 0),
	       COALESCE(p.currency, 'PEN'), COALESCE(p.exchange_rate, 0),
	       COALESCE(to_char(p.amended_date, 'YYYY-MM-DD'), ''), COALESCE(p.amended_type, ''),
	       COALESCE(p.amended_series, ''), COALESCE(p.amended_number, ''),
	       COALESCE(to_char(p.detraction_date, 'YYYY-MM-DD'), ''), COALESCE(p.detraction_number, ''),
	       COALESCE(p.retention_flag, ''), COALESCE(p.goods_class, ''),
	       COALESCE(p.error_exchange_rate, ''), COALESCE(p.error_non_located, ''),
	       COALESCE(p.error_exemption_waived, ''), COALESCE(p.error_dni_supplier, ''),
	       COALESCE(p.payment_indicator, ''), COALESCE(p.status, '1')
	FROM purchase_register p
	WHERE p.company_id = $1 AND p.period = $2
	ORDER BY p.cuo`

// ListPurchases comprobantes de compra del periodo ordenados por CUO.
func (r *RegisterRepo) ListPurchases(ctx context.Context, companyID, period string) ([]entity.PurchaseDocument, error) {
	rows, err := r.q.Query(ctx, purchasesQuery, companyID, period)
	if err != nil {
		return nil, fmt.Errorf("register.ListPurchases: %w", err)
	}
	defer rows.Close()

	var list []entity.PurchaseDocument
	for rows.Next() {
		var d entity.PurchaseDocument
		if err := rows.Scan(
			&d.CUO, &d.IssueDate, &d.DueDate,
			&d.DocumentType, &d.Series, &d.DUAYear, &d.Number,
			&d.DailyTotal,
			&d.SupplierDocType, &d.SupplierDocNumber, &d.SupplierName,
			&d.TaxableBaseA, &d.IGVA,
			&d.TaxableBaseB, &d.IGVB,
			&d.TaxableBaseC, &d.IGVC,
			&d.NonTaxable, &d.ISC, &d.ICBPER,
			&d.OtherCharges, &d.Total,
			&d.Currency, &d.ExchangeRate,
			&d.Amended.Date, &d.Amended.Type,
			&d.Amended.Series, &d.Amended.Number,
			&d.DetractionDate, &d.DetractionNumber,
			&d.RetentionFlag, &d.GoodsClass,
			&d.ErrorExchangeRate, &d.ErrorNonLocated,
			&d.ErrorExemptionWaived, &d.ErrorDNISupplier,
			&d.PaymentIndicator, &d.Status,
		); err != nil {
			return nil, fmt.Errorf("register.ListPurchases scan: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

const salesQuery = `
	SELECT s.cuo,
	       to_char(s.issue_date, 'YYYY-MM-DD'),
	       COALESCE(to_char(s.due_date, 'YYYY-MM-DD'), ''),
	       s.document_type, COALESCE(s.series, ''), s.number,
	       COALESCE(s.daily_total, 0),
	       COALESCE(s.customer_doc_type, ''), COALESCE(s.customer_doc_number, ''), COALESCE(s.customer_name, ''),
	       COALESCE(s.export_value, 0), COALESCE(s.taxable_base, 0), COALESCE(s.taxable_discount, 0),
	       COALESCE(s.igv, 0), COALESCE(s.igv_discount, 0),
	       COALESCE(s.exempt, 0), COALESCE(s.unaffected, 0),
	       COALESCE(s.isc, 0), COALESCE(s.icbper, 0), COALESCE(s.other_charges, 0), COALESCE(s.total, 0),
	       COALESCE(s.currency, 'PEN'), COALESCE(s.exchange_rate, 0),
	       COALESCE(to_char(s.amended_date, 'YYYY-MM-DD'), ''), COALESCE(s.amended_type, ''),
	       COALESCE(s.amended_series, ''), COALESCE(s.amended_number, ''),
	       COALESCE(s.contract_id, ''),
	       COALESCE(s.error_exchange_rate, ''), COALESCE(s.payment_indicator, ''), COALESCE(s.status, '1')
	FROM sales_register s
	WHERE s.company_id = $1 AND s.period = $2
	ORDER BY s.cuo`

// ListSales comprobantes de venta del periodo ordenados por CUO.
func (r *RegisterRepo) ListSales(ctx context.Context, companyID, period string) ([]entity.SalesDocument, error) {
	rows, err := r.q.Query(ctx, salesQuery, companyID, period)
	if err != nil {
		return nil, fmt.Errorf("register.ListSales: %w", err)
	}
	defer rows.Close()

	var list []entity.SalesDocument
	for rows.Next() {
		var d entity.SalesDocument
		if err := rows.Scan(
			&d.CUO, &d.IssueDate, &d.DueDate,
			&d.DocumentType, &d.Series, &d.Number,
			&d.DailyTotal,
			&d.CustomerDocType, &d.CustomerDocNumber, &d.CustomerName,
			&d.ExportValue, &d.TaxableBase, &d.TaxableDiscount,
			&d.IGV, &d.IGVDiscount,
			&d.Exempt, &d.Unaffected,
			&d.ISC, &d.ICBPER, &d.OtherCharges, &d.Total,
			&d.Currency, &d.ExchangeRate,
			&d.Amended.Date, &d.Amended.Type,
			&d.Amended.Series, &d.Amended.Number,
			&d.ContractID,
			&d.ErrorExchangeRate, &d.PaymentIndicator, &d.Status,
		); err != nil {
			return nil, fmt.Errorf("register.ListSales scan: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
