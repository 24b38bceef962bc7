// Package ticket genera el ticket imprimible de una venta completada.
//
// Formato fijo de 80 mm:
//
//	┌──────────────────────────────┐
//	│        PASTELERÍA            │
//	│      Sucursal Central        │
//	│      <fecha y hora>          │
//	│ ───────────────────────────  │
//	│ Prod          Cant       $$  │
//	│ ...renglones...              │
//	│ ───────────────────────────  │
//	│        Subtotal / Descuento  │
//	│        TOTAL  /  Pago        │
//	│ ───────────────────────────  │
//	│   ¡Gracias por su compra!    │
//	│   Ticket: <id>               │
//	└──────────────────────────────┘
package ticket

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// Printer escribe tickets PDF en un directorio de spool y dispara la
// impresión tras una espera fija que deja asentar el documento.
type Printer struct {
	dir    string
	settle time.Duration
	log    *logger.Logger
}

// NewPrinter construye el impresor de tickets.
func NewPrinter(dir string, settle time.Duration, log *logger.Logger) *Printer {
	return &Printer{dir: dir, settle: settle, log: log}
}

// Print genera el ticket de la venta y devuelve la ruta del documento.
// Si la superficie de salida no puede crearse no hay reintento.
func (p *Printer) Print(ctx context.Context, venta entity.VentaDetalle) (string, error) {
	doc, err := render(venta)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("ticket: crear spool: %w", err)
	}
	path := filepath.Join(p.dir, "ticket-"+venta.IDVenta+".pdf")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("ticket: escribir %s: %w", path, err)
	}

	// Espera de asentado antes de disparar la impresión.
	select {
	case <-time.After(p.settle):
	case <-ctx.Done():
		return path, ctx.Err()
	}

	p.log.Info().Str("ticket", venta.IDVenta).Str("path", path).Msg("ticket enviado a impresión")
	return path, nil
}

func render(venta entity.VentaDetalle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(80, 200).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle("Ticket "+venta.IDVenta, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(venta)...)
	m.AddRows(divider())
	m.AddRows(itemHeaderRow())
	m.AddRows(itemRows(venta)...)
	m.AddRows(divider())
	m.AddRows(totalsRows(venta)...)
	m.AddRows(divider())
	m.AddRows(footerRows(venta)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("ticket: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(venta entity.VentaDetalle) []core.Row {
	fecha := venta.Fecha
	if fecha == "" {
		fecha = time.Now().Format("02/01/2006 15:04")
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PASTELERÍA", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Sucursal Central", props.Text{Align: align.Center}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New(fecha, props.Text{Align: align.Center}),
		)),
	}
}

func divider() core.Row {
	return line.NewRow(2, props.Line{Style: linestyle.Dashed, Thickness: 0.3})
}

func itemHeaderRow() core.Row {
	return row.New(4).Add(
		col.New(6).Add(text.New("Prod", props.Text{Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Align: align.Center})),
		col.New(4).Add(text.New("$$", props.Text{Style: fontstyle.Bold, Align: align.Right})),
	)
}

func itemRows(venta entity.VentaDetalle) []core.Row {
	rows := make([]core.Row, 0, len(venta.Items))
	for _, it := range venta.Items {
		nombre := it.NombreProducto
		if nombre == "" {
			nombre = it.IDProducto
		}
		rows = append(rows, row.New(4).Add(
			col.New(6).Add(text.New(nombre)),
			col.New(2).Add(text.New(it.Cantidad.String(), props.Text{Align: align.Center})),
			col.New(4).Add(text.New("$"+it.PrecioUnitario.StringFixed(2), props.Text{Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(venta entity.VentaDetalle) []core.Row {
	return []core.Row{
		row.New(4).Add(col.New(12).Add(
			text.New("Subtotal: $"+venta.Subtotal.StringFixed(2), props.Text{Align: align.Right}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Descuento: $"+venta.Descuento.StringFixed(2), props.Text{Align: align.Right}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("TOTAL: $"+venta.Total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Pago: "+venta.MetodoPago, props.Text{Align: align.Right}),
		)),
	}
}

func footerRows(venta entity.VentaDetalle) []core.Row {
	return []core.Row{
		row.New(4).Add(col.New(12).Add(
			text.New("¡Gracias por su compra!", props.Text{Align: align.Center}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New("Ticket: "+venta.IDVenta, props.Text{Align: align.Center}),
		)),
	}
}
