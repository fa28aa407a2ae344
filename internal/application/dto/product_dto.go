package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invorya/inventory-web/internal/domain"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Validate aplica las restricciones de campos antes de transmitir.
func (r CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.ErrInvalidInput
	}
	if r.Price.IsNegative() {
		return domain.ErrNegativePrice
	}
	if r.Quantity < 0 {
		return domain.ErrNegativeQuantity
	}
	return nil
}

// ProductPatch actualización parcial explícita de un producto.
// Cada campo es opcional; solo los campos presentes viajan en el PUT.
type ProductPatch struct {
	Name     *string          `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Quantity *int             `json:"quantity,omitempty"`
}

// Validate valida campo a campo los valores presentes.
func (p ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return domain.ErrInvalidInput
	}
	if p.Price != nil && p.Price.IsNegative() {
		return domain.ErrNegativePrice
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return domain.ErrNegativeQuantity
	}
	return nil
}

// IsZero indica si el patch no trae ningún campo.
func (p ProductPatch) IsZero() bool {
	return p.Name == nil && p.Price == nil && p.Quantity == nil
}
