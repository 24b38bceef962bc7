package entity

import "github.com/shopspring/decimal"

// ProyeccionItem meta de venta de un producto: derivada del histórico
// (modo automático) o capturada por el usuario (modo manual).
type ProyeccionItem struct {
	IDProducto string          `json:"idProducto"`
	Nombre     string          `json:"nombre,omitempty"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// ProyeccionResumen cifras estimadas de una proyección.
type ProyeccionResumen struct {
	IngresoEst  decimal.Decimal `json:"ingresoEst"`
	CostoMatEst decimal.Decimal `json:"costoMatEst"`
	GananciaEst decimal.Decimal `json:"gananciaEst"`
}

// CompraItem renglón de la lista de compras derivada de una proyección.
type CompraItem struct {
	IDInsumo      string          `json:"idInsumo,omitempty"`
	Nombre        string          `json:"nombre"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Unidad        string          `json:"unidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// Costo total del renglón (cantidad × costo unitario).
func (c CompraItem) Costo() decimal.Decimal {
	return c.Cantidad.Mul(c.CostoUnitario)
}
