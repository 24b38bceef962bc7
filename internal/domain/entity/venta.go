package entity

import "github.com/shopspring/decimal"

// Venta encabezado de una venta; la crea el backend en el checkout,
// el cliente solo la lee.
type Venta struct {
	IDVenta    string          `json:"idVenta"`
	Fecha      string          `json:"fecha"`
	Cajero     string          `json:"cajero"`
	Total      decimal.Decimal `json:"total"`
	MetodoPago string          `json:"metodoPago"`
	Estado     string          `json:"estado"`
}

// VentaItem renglón de una venta.
type VentaItem struct {
	IDProducto     string          `json:"idProducto"`
	NombreProducto string          `json:"nombreProducto,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal,omitempty"`
}

// VentaDetalle venta completa con renglones y totales.
type VentaDetalle struct {
	Venta
	Items     []VentaItem     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Descuento decimal.Decimal `json:"descuento"`
}

// Usuario perfil de la sesión autenticada.
type Usuario struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
