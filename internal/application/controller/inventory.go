package controller

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
)

// loadInventory trae insumos y alertas y redibuja el inventario.
func (c *Controller) loadInventory(ctx context.Context) error {
	insumos, err := c.api.GetInsumos(ctx)
	if err != nil {
		c.toastError(err)
		return err
	}
	alerts, err := c.api.GetStockAlerts(ctx)
	if err != nil {
		c.toastError(err)
		return err
	}
	c.state.Insumos = insumos
	c.state.Alerts = alerts
	ui.RenderInventario(c.out, insumos, alerts)
	return nil
}

// AdjustInsumoStock aplica un delta con signo al stock de un insumo.
// Mientras el ajuste está en vuelo no se acepta otro para el mismo
// insumo.
func (c *Controller) AdjustInsumoStock(ctx context.Context, id string, delta decimal.Decimal) error {
	if !c.state.beginOp("stock:" + id) {
		return nil
	}
	defer c.state.endOp("stock:" + id)

	nuevo, err := c.api.UpdateStock(ctx, id, delta)
	if err != nil {
		c.toastError(err)
		return err
	}
	ui.Toast(c.out, "success", "Stock actualizado: "+nuevo.String())
	return c.loadInventory(ctx)
}

// SaveInsumo alta o edición de un insumo; id vacío significa alta.
func (c *Controller) SaveInsumo(ctx context.Context, id string, data apiclient.InsumoData) error {
	var err error
	if id == "" {
		err = c.api.CreateInsumo(ctx, data)
	} else {
		err = c.api.UpdateInsumo(ctx, id, data)
	}
	if err != nil {
		c.toastError(err)
		return err
	}
	ui.Toast(c.out, "success", "Insumo guardado")
	return c.loadInventory(ctx)
}
