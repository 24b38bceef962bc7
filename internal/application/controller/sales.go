package controller

import (
	"context"

	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/ui"
)

// loadVentas trae las ventas del rango vigente. Al entrar por primera
// vez el rango es el mes en curso.
func (c *Controller) loadVentas(ctx context.Context) error {
	if c.state.Rango == (pos.DateRange{}) {
		c.state.Rango = pos.DefaultRange(c.now())
	}
	ventas, err := c.api.GetSales(ctx, c.state.Rango.FechaInicio(), c.state.Rango.FechaFin())
	if err != nil {
		c.toastError(err)
		return err
	}
	c.state.Ventas = ventas
	ui.RenderVentas(c.out, ventas)
	return nil
}

// SetPeriodo aplica un preset de fechas (hoy, semana, mes) y recarga.
func (c *Controller) SetPeriodo(ctx context.Context, periodo string) error {
	c.state.Rango = pos.RangeFor(periodo, c.now())
	return c.loadVentas(ctx)
}

// SetRango aplica un rango arbitrario y recarga.
func (c *Controller) SetRango(ctx context.Context, r pos.DateRange) error {
	c.state.Rango = r
	return c.loadVentas(ctx)
}

// ShowSaleDetail trae y dibuja el detalle de una venta.
func (c *Controller) ShowSaleDetail(ctx context.Context, idVenta string) error {
	detalle, err := c.api.GetSaleDetail(ctx, idVenta)
	if err != nil {
		c.toastError(err)
		return err
	}
	ui.RenderVentaDetalle(c.out, detalle)
	return nil
}

// ReprintTicket vuelve a imprimir el ticket de una venta registrada.
func (c *Controller) ReprintTicket(ctx context.Context, idVenta string) error {
	detalle, err := c.api.GetSaleDetail(ctx, idVenta)
	if err != nil {
		c.toastError(err)
		return err
	}
	ruta, err := c.printer.Print(ctx, *detalle)
	if err != nil {
		c.toastError(err)
		return err
	}
	ui.Toast(c.out, "success", "Ticket generado: "+ruta)
	return nil
}
