// Package ui dibuja las vistas del POS en texto. Cada función de render
// es pura dado el estado que recibe: reconstruye la vista completa en
// cada invocación en lugar de mutar lo ya dibujado.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
)

// RenderProductos catálogo del POS, ya filtrado.
func RenderProductos(w io.Writer, productos []entity.Producto) {
	if len(productos) == 0 {
		fmt.Fprintln(w, "No hay productos que coincidan")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tProducto\tCategoría\tPrecio")
	for _, p := range productos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Nombre, p.Categoria, Money(p.PrecioVenta))
	}
	tw.Flush()
}

// RenderCart carrito con subtotal, descuento, total y etiqueta de cobro.
func RenderCart(w io.Writer, cart *pos.Cart, descuento decimal.Decimal) {
	if cart.IsEmpty() {
		fmt.Fprintln(w, "Carrito vacío")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, l := range cart.Lines() {
			fmt.Fprintf(tw, "%s\t%s x %d\t%s\n", l.Producto.Nombre, Money(l.Producto.PrecioVenta), l.Cantidad, Money(l.Importe()))
		}
		tw.Flush()
	}
	fmt.Fprintf(w, "Subtotal: %s\n", Money(cart.Subtotal()))
	fmt.Fprintf(w, "Total: %s\n", Money(cart.Total(descuento)))
	fmt.Fprintf(w, "[%s]\n", CheckoutLabel(cart.Total(descuento)))
}

// RenderInventario tabla de insumos con estado por fila y KPIs de alertas.
func RenderInventario(w io.Writer, insumos []entity.Insumo, alerts []entity.StockAlert) {
	bajo, critico := 0, 0
	for _, a := range alerts {
		switch a.Nivel {
		case "critico":
			critico++
		case "bajo":
			bajo++
		}
	}
	fmt.Fprintf(w, "Stock bajo: %d   Stock crítico: %d\n", bajo, critico)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Insumo\tUnidad\tCosto\tStock\tMínimo\tEstado")
	for _, ins := range insumos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			ins.Nombre, ins.UnidadMedida, Money(ins.CostoUnitario),
			ins.StockActual.String(), ins.StockMinimo.String(),
			pos.EstadoStock(ins.StockActual, ins.StockMinimo))
	}
	tw.Flush()
}

// RenderProductosTable tabla de administración de productos (incluye inactivos).
func RenderProductosTable(w io.Writer, productos []entity.Producto) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tProducto\tCategoría\tPrecio\tCosto\tMargen\tStock")
	for _, p := range productos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s%%\t%s\n",
			p.ID, p.Nombre, p.Categoria, Money(p.PrecioVenta), Money(p.CostoProduccion),
			p.Margen.StringFixed(1), p.Stock.String())
	}
	tw.Flush()
}

// RenderVentas tabla de ventas del periodo; un resultado vacío dibuja la
// fila de estado vacío en vez de una tabla sin renglones.
func RenderVentas(w io.Writer, ventas []entity.Venta) {
	if len(ventas) == 0 {
		fmt.Fprintln(w, "No hay ventas en este periodo")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFecha\tCajero\tTotal\tMétodo\tEstado")
	for _, v := range ventas {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.IDVenta, v.Fecha, v.Cajero, Money(v.Total), v.MetodoPago, v.Estado)
	}
	tw.Flush()
}

// RenderVentaDetalle detalle de una venta: renglones y totales.
func RenderVentaDetalle(w io.Writer, v *entity.VentaDetalle) {
	fmt.Fprintf(w, "Detalle de Venta: %s\n", v.IDVenta)
	fmt.Fprintf(w, "Fecha: %s   Cajero: %s   Método: %s   Estado: %s\n", v.Fecha, v.Cajero, v.MetodoPago, v.Estado)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Producto\tCant.\tPrecio\tTotal")
	for _, it := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.NombreProducto, it.Cantidad.String(), Money(it.PrecioUnitario), Money(it.Subtotal))
	}
	tw.Flush()

	fmt.Fprintf(w, "Subtotal: %s\n", Money(v.Subtotal))
	fmt.Fprintf(w, "Descuento: -%s\n", Money(v.Descuento))
	fmt.Fprintf(w, "Total: %s\n", Money(v.Total))
}

// RenderProyeccion KPIs, metas de venta y lista de compras.
// En modo manual las metas se muestran editables (índice por renglón).
func RenderProyeccion(w io.Writer, manual bool, resumen entity.ProyeccionResumen, items []entity.ProyeccionItem, compras []entity.CompraItem) {
	fmt.Fprintf(w, "Ingreso est.: %s   Costo mat.: %s   Ganancia: %s\n",
		Money(resumen.IngresoEst), Money(resumen.CostoMatEst), Money(resumen.GananciaEst))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Producto\tCantidad")
	for i, it := range items {
		if manual {
			fmt.Fprintf(tw, "[%d] %s\t%s\n", i, it.Nombre, it.Cantidad.String())
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", it.Nombre, it.Cantidad.String())
		}
	}
	tw.Flush()

	if len(compras) == 0 {
		fmt.Fprintln(w, "No se requieren materiales")
		return
	}
	fmt.Fprintln(w, "Lista de compras:")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Insumo\tCantidad\tCosto")
	for _, c := range compras {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\n", c.Nombre, c.Cantidad.StringFixed(2), c.Unidad, Money(c.Costo()))
	}
	tw.Flush()
}

// Toast notificación transitoria (info, success, warning, error).
func Toast(w io.Writer, tipo, mensaje string) {
	fmt.Fprintf(w, "[%s] %s\n", tipo, mensaje)
}
