package ui

import "github.com/shopspring/decimal"

// Money formatea un importe como lo ve el usuario: $350.00.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// CheckoutLabel etiqueta del botón de cobro con el total vigente.
func CheckoutLabel(total decimal.Decimal) string {
	return "Cobrar " + Money(total)
}
