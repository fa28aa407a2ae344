package web

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter formatea montos con separador de miles en estilo en-US,
// que es como el front-end original mostraba los precios ("$9.99").
var moneyPrinter = message.NewPrinter(language.English)

// money renderiza un decimal como dinero con dos decimales: "$9.99", "$1,234.56".
func money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("$%.2f", f)
}
