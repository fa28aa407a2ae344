package entity

import "github.com/shopspring/decimal"

// InventoryRow fila del reporte de valorización de inventario.
// Proyección de solo lectura; se recalcula en cada petición explícita.
type InventoryRow struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// SalesRow fila del reporte de ventas por rango de fechas.
type SalesRow struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}
