package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario tal como lo entrega el API remoto.
// El API es el dueño del dato; la copia local es transitoria y nunca autoritativa.
// El backend expone el identificador como "_id".
type Product struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`    // no negativo
	Quantity int             `json:"quantity"` // entero >= 0
}
