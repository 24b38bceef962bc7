// Package pos contiene la aritmética de punto de venta que el cliente
// resuelve localmente: carrito, clasificación de stock y rangos de fecha.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
)

// CartLine un producto en el carrito con su cantidad.
type CartLine struct {
	Producto entity.Producto
	Cantidad int
}

// Importe de la línea (precio × cantidad).
func (l CartLine) Importe() decimal.Decimal {
	return l.Producto.PrecioVenta.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Cart carrito transitorio del POS. Las líneas se identifican por producto:
// agregar un producto ya presente incrementa su cantidad en vez de duplicar
// la línea.
type Cart struct {
	lines []CartLine
}

// Add agrega una unidad del producto al carrito.
func (c *Cart) Add(p entity.Producto) {
	for i := range c.lines {
		if c.lines[i].Producto.ID == p.ID {
			c.lines[i].Cantidad++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Producto: p, Cantidad: 1})
}

// Remove elimina la línea del producto indicado.
func (c *Cart) Remove(productoID string) {
	for i := range c.lines {
		if c.lines[i].Producto.ID == productoID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines devuelve las líneas en orden de inserción.
func (c *Cart) Lines() []CartLine {
	return c.lines
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear vacía el carrito (checkout exitoso o logout).
func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal suma precio × cantidad de todas las líneas.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Importe())
	}
	return total
}

// Total aplica un descuento plano no negativo, acotado para que el
// total nunca sea negativo: max(0, subtotal − descuento).
func (c *Cart) Total(descuento decimal.Decimal) decimal.Decimal {
	if descuento.IsNegative() {
		descuento = decimal.Zero
	}
	total := c.Subtotal().Sub(descuento)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
