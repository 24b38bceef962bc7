// Package report transforma los informes agregados del backend en series
// listas para graficar, y administra los gráficos por destino para que
// una reconstrucción libere siempre la instancia anterior.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
)

// Series etiquetas y valores de un gráfico, en orden de dibujo.
type Series struct {
	Labels []string
	Values []decimal.Decimal
}

// DailySales serie de ventas por día ordenada por fecha ascendente.
func DailySales(r *apiclient.SalesReport) Series {
	fechas := make([]string, 0, len(r.VentasPorDia))
	for f := range r.VentasPorDia {
		fechas = append(fechas, f)
	}
	sort.Strings(fechas)

	s := Series{Labels: fechas, Values: make([]decimal.Decimal, 0, len(fechas))}
	for _, f := range fechas {
		s.Values = append(s.Values, r.VentasPorDia[f].Total)
	}
	return s
}

// TopByQuantity primeros n renglones del informe por producto, que ya
// viene ordenado por cantidad vendida.
func TopByQuantity(rows []apiclient.ProductSales, n int) Series {
	if len(rows) > n {
		rows = rows[:n]
	}
	s := Series{}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.Nombre)
		s.Values = append(s.Values, r.CantidadVendida)
	}
	return s
}

// TopByRevenue primeros n productos reordenados por ingreso descendente,
// independiente del orden por cantidad. No muta el slice de entrada.
func TopByRevenue(rows []apiclient.ProductSales, n int) Series {
	ordenado := make([]apiclient.ProductSales, len(rows))
	copy(ordenado, rows)
	sort.SliceStable(ordenado, func(i, j int) bool {
		return ordenado[i].TotalVentas.GreaterThan(ordenado[j].TotalVentas)
	})
	if len(ordenado) > n {
		ordenado = ordenado[:n]
	}
	s := Series{}
	for _, r := range ordenado {
		s.Labels = append(s.Labels, r.Nombre)
		s.Values = append(s.Values, r.TotalVentas)
	}
	return s
}

// PaymentShares participación de ingreso por método de pago, etiquetas
// en mayúsculas y orden alfabético estable.
func PaymentShares(r *apiclient.SalesReport) Series {
	metodos := make([]string, 0, len(r.VentasPorMetodo))
	for m := range r.VentasPorMetodo {
		metodos = append(metodos, m)
	}
	sort.Strings(metodos)

	s := Series{}
	for _, m := range metodos {
		s.Labels = append(s.Labels, strings.ToUpper(m))
		s.Values = append(s.Values, r.VentasPorMetodo[m].Total)
	}
	return s
}
