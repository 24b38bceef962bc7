package controller

import (
	"context"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/application/report"
	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
)

// Destinos fijos de los gráficos de informes.
const (
	ChartVentas      = "sales-chart"
	ChartTopCantidad = "products-qty-chart"
	ChartTopIngreso  = "products-rev-chart"
	ChartMetodos     = "methods-chart"
)

const topProductos = 5

// SetReportPeriodo cambia el periodo del selector de informes y vuelve
// a traer los dos reportes.
func (c *Controller) SetReportPeriodo(ctx context.Context, periodo string) error {
	c.state.RepPeriodo = periodo
	return c.loadReports(ctx)
}

// loadReports trae los dos informes del periodo vigente en paralelo y
// reconstruye los cuatro gráficos. Reconstruir un destino ya dibujado
// libera primero la instancia anterior.
func (c *Controller) loadReports(ctx context.Context) error {
	periodo := c.state.RepPeriodo
	if periodo == "" {
		periodo = pos.PeriodoMes
	}

	var (
		ventas     *apiclient.SalesReport
		porProd    []apiclient.ProductSales
		errV, errP error
	)
	done := make(chan struct{}, 2)
	go func() {
		ventas, errV = c.api.GetSalesReport(ctx, periodo)
		done <- struct{}{}
	}()
	go func() {
		porProd, errP = c.api.GetProductSalesReport(ctx, periodo)
		done <- struct{}{}
	}()
	<-done
	<-done

	if errV != nil {
		c.toastError(errV)
		return errV
	}
	if errP != nil {
		c.toastError(errP)
		return errP
	}

	c.state.Charts.Upsert(ChartVentas, report.Line, "Ventas por Día", report.DailySales(ventas))
	c.state.Charts.Upsert(ChartTopCantidad, report.BarH, "Top Productos (Cantidad)", report.TopByQuantity(porProd, topProductos))
	c.state.Charts.Upsert(ChartTopIngreso, report.BarV, "Top Productos (Ingresos)", report.TopByRevenue(porProd, topProductos))
	c.state.Charts.Upsert(ChartMetodos, report.Donut, "Métodos de Pago", report.PaymentShares(ventas))

	for _, target := range []string{ChartVentas, ChartTopCantidad, ChartTopIngreso, ChartMetodos} {
		c.state.Charts.Get(target).WriteTo(c.out)
	}
	return nil
}
