package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind tipo de gráfico.
type Kind string

const (
	Line  Kind = "line"
	BarH  Kind = "barh"
	BarV  Kind = "barv"
	Donut Kind = "donut"
)

const barWidth = 40

// es formatea cifras con separadores en español para los ejes.
var es = message.NewPrinter(language.Spanish)

// Chart una instancia de gráfico ligada a un destino. Debe liberarse con
// Close antes de reconstruir el mismo destino.
type Chart struct {
	Target string
	Kind   Kind
	Title  string
	Data   Series
	closed bool
}

// Close libera la instancia; dibujar un gráfico cerrado es un error de programación.
func (c *Chart) Close() { c.closed = true }

// Closed indica si la instancia fue liberada.
func (c *Chart) Closed() bool { return c.closed }

// WriteTo dibuja el gráfico en texto: barras escaladas al valor máximo.
func (c *Chart) WriteTo(w io.Writer) {
	if c.closed {
		fmt.Fprintf(w, "[gráfico %s liberado]\n", c.Target)
		return
	}
	fmt.Fprintf(w, "── %s ──\n", c.Title)
	if len(c.Data.Values) == 0 {
		fmt.Fprintln(w, "  (sin datos en el periodo)")
		return
	}

	max := c.Data.Values[0]
	total := decimal.Zero
	for _, v := range c.Data.Values {
		if v.GreaterThan(max) {
			max = v
		}
		total = total.Add(v)
	}

	ancho := anchoEtiquetas(c.Data.Labels)
	for i, label := range c.Data.Labels {
		v := c.Data.Values[i]
		switch c.Kind {
		case Donut:
			pct := decimal.Zero
			if total.IsPositive() {
				pct = v.Div(total).Mul(decimal.NewFromInt(100))
			}
			fmt.Fprintf(w, "  %s %s  (%s%%)\n", rellenar(label, ancho), barra(v, max), es.Sprintf("%.1f", pctFloat(pct)))
		default:
			fmt.Fprintf(w, "  %s %s  %s\n", rellenar(label, ancho), barra(v, max), es.Sprintf("%.2f", vFloat(v)))
		}
	}
}

func barra(v, max decimal.Decimal) string {
	if !max.IsPositive() {
		return ""
	}
	n := int(v.Div(max).Mul(decimal.NewFromInt(barWidth)).IntPart())
	if n < 1 && v.IsPositive() {
		n = 1
	}
	return strings.Repeat("█", n)
}

// anchoEtiquetas ancho de columna en runas, no en bytes: las etiquetas
// en español llevan acentos multibyte.
func anchoEtiquetas(labels []string) int {
	ancho := 0
	for _, l := range labels {
		if n := utf8.RuneCountInString(l); n > ancho {
			ancho = n
		}
	}
	return ancho
}

// rellenar alinea la etiqueta a la izquierda contando runas; %-*s
// rellenaría por bytes.
func rellenar(label string, ancho int) string {
	return label + strings.Repeat(" ", ancho-utf8.RuneCountInString(label))
}

func vFloat(d decimal.Decimal) float64   { f, _ := d.Float64(); return f }
func pctFloat(d decimal.Decimal) float64 { f, _ := d.Float64(); return f }

// Registry gráficos vivos por destino. Reconstruir un destino libera la
// instancia anterior antes de crear la nueva, nunca quedan dos ligadas
// al mismo destino.
type Registry struct {
	charts map[string]*Chart
}

// NewRegistry construye el registro vacío.
func NewRegistry() *Registry {
	return &Registry{charts: make(map[string]*Chart)}
}

// Upsert crea el gráfico del destino, liberando el anterior si existía.
func (r *Registry) Upsert(target string, kind Kind, title string, data Series) *Chart {
	if prev, ok := r.charts[target]; ok {
		prev.Close()
	}
	c := &Chart{Target: target, Kind: kind, Title: title, Data: data}
	r.charts[target] = c
	return c
}

// Get devuelve el gráfico vigente del destino, o nil.
func (r *Registry) Get(target string) *Chart {
	return r.charts[target]
}

// Len número de destinos con gráfico vigente.
func (r *Registry) Len() int { return len(r.charts) }
