package entity

import "github.com/shopspring/decimal"

// Producto representa un producto vendible del catálogo.
// CostoProduccion lo calcula el backend a partir de la receta (BOM);
// el cliente solo lo cachea durante la sesión de vista.
type Producto struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Categoria       string          `json:"categoria"`
	PrecioVenta     decimal.Decimal `json:"precioVenta"`
	CostoProduccion decimal.Decimal `json:"costoProduccion"`
	Margen          decimal.Decimal `json:"margen"`
	Stock           decimal.Decimal `json:"stock"`
	ImagenURL       string          `json:"imagenUrl"`
	Activo          bool            `json:"activo"`
}

// Categorias válidas para el formulario de producto.
var Categorias = []string{"Pasteles", "Galletas", "Pays", "Individual", "Panqué", "Bebidas"}
