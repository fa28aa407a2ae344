package dto

import (
	"github.com/shopspring/decimal"

	"github.com/invorya/inventory-web/internal/domain/entity"
)

// InventoryReportResponse respuesta de GET /api/reports/inventory.
// La agregación (totalValue) se calcula en el servidor y se confía tal cual.
type InventoryReportResponse struct {
	Report     []entity.InventoryRow `json:"report"`
	TotalValue decimal.Decimal       `json:"totalValue"`
}

// SalesReportResponse respuesta de GET /api/reports/sales?startDate=&endDate=.
type SalesReportResponse struct {
	Report     []entity.SalesRow `json:"report"`
	TotalSales decimal.Decimal   `json:"totalSales"`
}
