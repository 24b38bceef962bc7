package controller

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/domain"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
)

// loadProyeccionAuto trae la proyección derivada del histórico de ventas.
func (c *Controller) loadProyeccionAuto(ctx context.Context) error {
	proy, err := c.api.GetHistoricalProjection(ctx)
	if err != nil {
		c.toastError(err)
		return err
	}
	c.state.ProyManual = false
	c.state.ProyAutoItems = proy.Items
	c.state.ProyResumen = proy.Summary
	c.state.ProyCompras = proy.ShoppingList
	c.renderProyeccion()
	return nil
}

// ToggleManual alterna entre modo histórico y metas manuales. La primera
// entrada a manual siembra una meta en cero por producto del catálogo;
// las cantidades ya capturadas se conservan en cambios posteriores.
func (c *Controller) ToggleManual(ctx context.Context) error {
	if c.state.ProyManual {
		return c.loadProyeccionAuto(ctx)
	}

	c.state.ProyManual = true
	if len(c.state.ProyItems) == 0 {
		productos := c.state.Productos
		if len(productos) == 0 {
			var err error
			productos, err = c.api.GetProducts(ctx, true)
			if err != nil {
				c.toastError(err)
				return err
			}
		}
		for _, p := range productos {
			c.state.ProyItems = append(c.state.ProyItems, entity.ProyeccionItem{
				IDProducto: p.ID,
				Nombre:     p.Nombre,
				Cantidad:   decimal.Zero,
			})
		}
	}
	return c.RecalcularProyeccion(ctx)
}

// SetMeta fija la cantidad de una meta manual y recalcula.
func (c *Controller) SetMeta(ctx context.Context, idx int, cantidad decimal.Decimal) error {
	if !c.state.ProyManual || idx < 0 || idx >= len(c.state.ProyItems) {
		return domain.ErrNotFound
	}
	if cantidad.IsNegative() {
		return domain.ErrCantidadInvalida
	}
	c.state.ProyItems[idx].Cantidad = cantidad
	return c.RecalcularProyeccion(ctx)
}

// RecalcularProyeccion recalcula resumen y lista de compras para las
// metas con cantidad positiva. Sin metas positivas el resultado es el
// resumen en cero, resuelto localmente.
func (c *Controller) RecalcularProyeccion(ctx context.Context) error {
	positivas := make([]entity.ProyeccionItem, 0, len(c.state.ProyItems))
	for _, it := range c.state.ProyItems {
		if it.Cantidad.IsPositive() {
			positivas = append(positivas, it)
		}
	}
	if len(positivas) == 0 {
		c.state.ProyResumen = entity.ProyeccionResumen{}
		c.state.ProyCompras = nil
		c.renderProyeccion()
		return nil
	}

	if c.state.Busy("proyeccion") {
		return nil
	}
	c.state.beginOp("proyeccion")
	defer c.state.endOp("proyeccion")

	proy, err := c.api.CalculateProjectionDetails(ctx, positivas)
	if err != nil {
		c.toastError(err)
		return err
	}
	c.state.ProyResumen = proy.Summary
	c.state.ProyCompras = proy.ShoppingList
	c.renderProyeccion()
	return nil
}

func (c *Controller) renderProyeccion() {
	items := c.state.ProyAutoItems
	if c.state.ProyManual {
		items = c.state.ProyItems
	}
	ui.RenderProyeccion(c.out, c.state.ProyManual, c.state.ProyResumen, items, c.state.ProyCompras)
}
