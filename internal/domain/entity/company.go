package entity

import "time"

// Company contribuyente (tenant) cuyos libros y estados se generan. RUC de 11 dígitos.
type Company struct {
	ID          string    `json:"id"`
	RUC         string    `json:"ruc"`
	Name        string    `json:"name"`       // razón social
	TradeName   string    `json:"trade_name"` // nombre comercial
	Address     string    `json:"address"`
	Ubigeo      string    `json:"ubigeo"`       // código INEI de 6 dígitos
	AddressCode string    `json:"address_code"` // código de establecimiento anexo (SUNAT); "0000" = domicilio fiscal
	Status      string    `json:"status"`       // active, suspended, inactive
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Estados de la empresa.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
	CompanyStatusInactive  = "inactive"
)

// Party datos de la empresa como emisor de comprobantes (tipo de documento 6 = RUC).
func (c *Company) Party() Party {
	return Party{
		DocType:     "6",
		DocNumber:   c.RUC,
		Name:        c.Name,
		TradeName:   c.TradeName,
		Address:     c.Address,
		Ubigeo:      c.Ubigeo,
		AddressCode: c.AddressCode,
	}
}
