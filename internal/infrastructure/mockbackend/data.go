package mockbackend

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// seedProductos catálogo de demostración de la pastelería.
func seedProductos() []entity.Producto {
	return []entity.Producto{
		{ID: "1", Nombre: "Pastel de Chocolate", Categoria: "Pasteles", PrecioVenta: d(350), ImagenURL: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=200", Activo: true},
		{ID: "2", Nombre: "Galletas de Avena", Categoria: "Galletas", PrecioVenta: d(15), ImagenURL: "https://images.unsplash.com/photo-1499636138143-bd630f5cf38a?w=200", Activo: true},
		{ID: "3", Nombre: "Pay de Limón", Categoria: "Pays", PrecioVenta: d(280), ImagenURL: "https://images.unsplash.com/photo-1519915028121-7d3463d20b13?w=200", Activo: true},
		{ID: "4", Nombre: "Cupcake Red Velvet", Categoria: "Individual", PrecioVenta: d(45), ImagenURL: "https://images.unsplash.com/photo-1614707267537-b85aaf00c4b7?w=200", Activo: true},
		{ID: "5", Nombre: "Panqué de Naranja", Categoria: "Panqué", PrecioVenta: d(120), ImagenURL: "https://images.unsplash.com/photo-1557308536-ee471ef2c39a?w=200", Activo: true},
	}
}

// seedInsumos incluye un insumo bajo (Azúcar) y uno crítico (Leche) para
// que las alertas de la demo no salgan vacías.
func seedInsumos() []entity.Insumo {
	return []entity.Insumo{
		{ID: "1", Nombre: "Harina", UnidadMedida: "kg", StockActual: d(50), StockMinimo: d(10), CostoUnitario: d(15)},
		{ID: "2", Nombre: "Azúcar", UnidadMedida: "kg", StockActual: d(8), StockMinimo: d(10), CostoUnitario: d(22)},
		{ID: "3", Nombre: "Huevo", UnidadMedida: "pza", StockActual: d(100), StockMinimo: d(30), CostoUnitario: d(2.5)},
		{ID: "4", Nombre: "Leche", UnidadMedida: "L", StockActual: d(2), StockMinimo: d(12), CostoUnitario: d(24)},
		{ID: "5", Nombre: "Chocolate", UnidadMedida: "kg", StockActual: d(15), StockMinimo: d(5), CostoUnitario: d(120)},
	}
}

func seedVentas() []entity.VentaDetalle {
	return []entity.VentaDetalle{
		{
			Venta: entity.Venta{IDVenta: "V001", Fecha: "2023-10-25 10:30:00", Cajero: "Ana", Total: d(450), MetodoPago: "efectivo", Estado: "completada"},
			Items: []entity.VentaItem{
				{IDProducto: "1", NombreProducto: "Pastel de Chocolate", Cantidad: d(1), PrecioUnitario: d(350), Subtotal: d(350)},
				{IDProducto: "5", NombreProducto: "Panqué de Naranja", Cantidad: d(1), PrecioUnitario: d(120), Subtotal: d(120)},
			},
			Subtotal: d(470), Descuento: d(20),
		},
		{
			Venta: entity.Venta{IDVenta: "V002", Fecha: "2023-10-25 11:15:00", Cajero: "Ana", Total: d(1200), MetodoPago: "tarjeta", Estado: "completada"},
			Items: []entity.VentaItem{
				{IDProducto: "3", NombreProducto: "Pay de Limón", Cantidad: d(4), PrecioUnitario: d(280), Subtotal: d(1120)},
				{IDProducto: "2", NombreProducto: "Galletas de Avena", Cantidad: d(2), PrecioUnitario: d(15), Subtotal: d(30)},
				{IDProducto: "4", NombreProducto: "Cupcake Red Velvet", Cantidad: d(1), PrecioUnitario: d(45), Subtotal: d(45)},
			},
			Subtotal: d(1195), Descuento: d(0),
		},
		{
			Venta: entity.Venta{IDVenta: "V003", Fecha: "2023-10-26 09:45:00", Cajero: "Juan", Total: d(85), MetodoPago: "efectivo", Estado: "completada"},
			Items: []entity.VentaItem{
				{IDProducto: "2", NombreProducto: "Galletas de Avena", Cantidad: d(3), PrecioUnitario: d(15), Subtotal: d(45)},
				{IDProducto: "4", NombreProducto: "Cupcake Red Velvet", Cantidad: d(1), PrecioUnitario: d(45), Subtotal: d(45)},
			},
			Subtotal: d(90), Descuento: d(5),
		},
	}
}

// seedBOM recetas de demostración, ligadas al catálogo de insumos.
func seedBOM() map[string][]entity.BOMEntry {
	return map[string][]entity.BOMEntry{
		"1": {
			{IDProducto: "1", IDInsumo: "1", Cantidad: d(0.5), Unidad: "kg"},
			{IDProducto: "1", IDInsumo: "3", Cantidad: d(2), Unidad: "pza"},
			{IDProducto: "1", IDInsumo: "5", Cantidad: d(0.3), Unidad: "kg"},
		},
		"2": {
			{IDProducto: "2", IDInsumo: "1", Cantidad: d(0.2), Unidad: "kg"},
			{IDProducto: "2", IDInsumo: "2", Cantidad: d(0.1), Unidad: "kg"},
		},
	}
}
