package pos

import "github.com/shopspring/decimal"

// Etiquetas de estado de stock que ve el usuario.
const (
	EstadoBajoStock = "Bajo Stock"
	EstadoOK        = "OK"
)

// StockBajo indica si un insumo debe marcarse: stock actual menor o
// igual al mínimo. La igualdad cuenta como marcado.
func StockBajo(actual, minimo decimal.Decimal) bool {
	return actual.LessThanOrEqual(minimo)
}

// EstadoStock devuelve la etiqueta de estado para la fila de inventario.
func EstadoStock(actual, minimo decimal.Decimal) string {
	if StockBajo(actual, minimo) {
		return EstadoBajoStock
	}
	return EstadoOK
}
