package controller

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/domain"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
)

// loadPOS trae el catálogo activo y redibuja el punto de venta.
func (c *Controller) loadPOS(ctx context.Context) error {
	productos, err := c.api.GetProducts(ctx, true)
	if err != nil {
		c.toastError(err)
		return err
	}
	c.state.Productos = productos
	c.renderPOS()
	return nil
}

// SetFiltro filtra el catálogo por nombre y redibuja.
func (c *Controller) SetFiltro(filtro string) {
	c.state.Filtro = filtro
	c.renderPOS()
}

// AddToCart agrega una unidad del producto al carrito.
func (c *Controller) AddToCart(productoID string) error {
	for _, p := range c.state.Productos {
		if p.ID == productoID {
			c.state.Cart.Add(p)
			c.renderPOS()
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveFromCart quita la línea del producto.
func (c *Controller) RemoveFromCart(productoID string) {
	c.state.Cart.Remove(productoID)
	c.renderPOS()
}

// SetDescuento fija el descuento plano del ticket en curso.
func (c *Controller) SetDescuento(d decimal.Decimal) {
	if d.IsNegative() {
		d = decimal.Zero
	}
	c.state.Descuento = d
	c.renderPOS()
}

// SetMetodoPago fija el método de pago del ticket en curso.
func (c *Controller) SetMetodoPago(metodo string) {
	c.state.MetodoPago = metodo
}

// Checkout registra la venta, imprime el ticket y deja el POS listo
// para la siguiente. Un carrito vacío no llega al backend.
func (c *Controller) Checkout(ctx context.Context) error {
	if c.state.Cart.IsEmpty() {
		ui.Toast(c.out, "warning", "El carrito está vacío")
		return domain.ErrCarritoVacio
	}
	if !c.state.beginOp("checkout") {
		return nil
	}
	defer c.state.endOp("checkout")

	lines := c.state.Cart.Lines()
	items := make([]apiclient.SaleItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, apiclient.SaleItem{
			IDProducto:     l.Producto.ID,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.Producto.PrecioVenta,
		})
	}
	req := apiclient.CreateSaleRequest{
		Items:      items,
		MetodoPago: c.state.MetodoPago,
		Descuento:  c.state.Descuento,
		Cajero:     c.state.Usuario.Nombre,
	}
	resp, err := c.api.CreateSale(ctx, req)
	if err != nil {
		c.toastError(err)
		return err
	}

	detalle := c.ventaLocal(resp.IDVenta, lines)
	if _, err := c.printer.Print(ctx, detalle); err != nil {
		// La venta ya quedó registrada; solo se pierde el ticket.
		c.log.Error().Err(err).Str("idVenta", resp.IDVenta).Msg("no se pudo imprimir el ticket")
	}

	c.state.Cart.Clear()
	c.state.Descuento = decimal.Zero
	ui.Toast(c.out, "success", resp.Message)

	// El stock de productos cambió con la venta.
	return c.loadPOS(ctx)
}

// ventaLocal arma el detalle para el ticket con lo que el cliente ya
// sabe, sin otra ida al backend.
func (c *Controller) ventaLocal(idVenta string, lines []pos.CartLine) entity.VentaDetalle {
	d := entity.VentaDetalle{
		Venta: entity.Venta{
			IDVenta:    idVenta,
			Fecha:      c.now().Format("2006-01-02 15:04:05"),
			Cajero:     c.state.Usuario.Nombre,
			MetodoPago: c.state.MetodoPago,
			Estado:     "Completada",
			Total:      c.state.Cart.Total(c.state.Descuento),
		},
		Subtotal:  c.state.Cart.Subtotal(),
		Descuento: c.state.Descuento,
	}
	for _, l := range lines {
		d.Items = append(d.Items, entity.VentaItem{
			IDProducto:     l.Producto.ID,
			NombreProducto: l.Producto.Nombre,
			Cantidad:       decimal.NewFromInt(int64(l.Cantidad)),
			PrecioUnitario: l.Producto.PrecioVenta,
			Subtotal:       l.Importe(),
		})
	}
	return d
}

func (c *Controller) renderPOS() {
	ui.RenderProductos(c.out, pos.FilterByName(c.state.Productos, c.state.Filtro))
	ui.RenderCart(c.out, c.state.Cart, c.state.Descuento)
}
