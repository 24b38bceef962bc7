package entity

import "github.com/shopspring/decimal"

// Insumo es una materia prima consumida por producción, distinta de un
// producto vendible.
type Insumo struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	UnidadMedida  string          `json:"unidadMedida"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	StockActual   decimal.Decimal `json:"stockActual"`
	StockMinimo   decimal.Decimal `json:"stockMinimo"`
}

// Unidades válidas para insumos y filas de receta.
var Unidades = []string{"kg", "g", "L", "ml", "pza"}

// StockAlert alerta de stock precomputada por el backend.
// Nivel es "bajo" o "critico".
type StockAlert struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	StockActual decimal.Decimal `json:"stockActual"`
	StockMinimo decimal.Decimal `json:"stockMinimo"`
	Nivel       string          `json:"nivel"`
}

// BOMEntry liga un producto con un insumo y la cantidad requerida por unidad.
type BOMEntry struct {
	IDProducto string          `json:"idProducto"`
	IDInsumo   string          `json:"idInsumo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Unidad     string          `json:"unidad"`
}
