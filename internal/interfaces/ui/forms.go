package ui

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/domain"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
)

// Forms formularios transitorios de captura. Cada invocación construye
// el formulario desde cero: no hay estado retenido entre aperturas, el
// equivalente de reconstruir el modal en cada uso.
type Forms struct {
	in  *bufio.Reader
	out io.Writer
}

// NewForms construye los formularios sobre la entrada/salida dadas.
func NewForms(in io.Reader, out io.Writer) *Forms {
	return &Forms{in: bufio.NewReader(in), out: out}
}

func (f *Forms) read(label, def string) string {
	if def != "" {
		fmt.Fprintf(f.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(f.out, "%s: ", label)
	}
	line, _ := f.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// PromptCantidad pide la magnitud de un ajuste de stock. Debe ser un
// número finito mayor que cero; lo demás se rechaza sin llamar al backend.
func (f *Forms) PromptCantidad(titulo string) (decimal.Decimal, error) {
	raw := f.read(titulo+" — Cantidad", "1")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero, domain.ErrCantidadInvalida
	}
	return decimal.NewFromFloat(v), nil
}

// PromptProduccion pide las unidades producidas: entero positivo.
func (f *Forms) PromptProduccion(producto string) (int, error) {
	raw := f.read("Cantidad producida de "+producto, "1")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, domain.ErrCantidadInvalida
	}
	return n, nil
}

// Confirm pregunta sí/no; solo "s" o "si" confirman.
func (f *Forms) Confirm(pregunta string) bool {
	resp := strings.ToLower(f.read(pregunta+" (s/n)", "n"))
	return resp == "s" || resp == "si"
}

// ProductForm captura los datos de un producto y su receta. Con existing
// no nulo precarga los valores actuales; el costo calculado se muestra
// de solo lectura.
func (f *Forms) ProductForm(existing *entity.Producto, insumos []entity.Insumo, bom []entity.BOMEntry) (apiclient.ProductoData, []apiclient.BOMRow, error) {
	var data apiclient.ProductoData
	var defNombre, defCategoria, defPrecio, defImagen string
	if existing != nil {
		defNombre = existing.Nombre
		defCategoria = existing.Categoria
		defPrecio = existing.PrecioVenta.String()
		defImagen = existing.ImagenURL
		fmt.Fprintf(f.out, "Costo Producción (calculado): %s\n", Money(existing.CostoProduccion))
	}

	data.Nombre = f.read("Nombre del Producto", defNombre)
	data.Categoria = f.readEnum("Categoría", entity.Categorias, defCategoria)
	precio, err := strconv.ParseFloat(f.read("Precio Venta", defPrecio), 64)
	if data.Nombre == "" || err != nil || math.IsNaN(precio) {
		return data, nil, domain.ErrCamposRequeridos
	}
	data.PrecioVenta = decimal.NewFromFloat(precio)
	data.ImagenURL = f.read("URL Imagen", defImagen)

	filas, err := f.bomRows(insumos, bom)
	if err != nil {
		return data, nil, err
	}
	return data, filas, nil
}

// bomRows edita la lista dinámica de filas de receta. Las filas sin
// cantidad numérica se descartan.
func (f *Forms) bomRows(insumos []entity.Insumo, actual []entity.BOMEntry) ([]apiclient.BOMRow, error) {
	filas := make([]apiclient.BOMRow, 0, len(actual))
	for _, e := range actual {
		filas = append(filas, apiclient.BOMRow{IDInsumo: e.IDInsumo, Cantidad: e.Cantidad, Unidad: e.Unidad})
	}

	fmt.Fprintln(f.out, "Materia Prima (Receta) — enter vacío para terminar")
	for _, ins := range insumos {
		fmt.Fprintf(f.out, "  [%s] %s (%s)\n", ins.ID, ins.Nombre, ins.UnidadMedida)
	}
	for {
		id := f.read("Agregar Insumo (id)", "")
		if id == "" {
			break
		}
		qty, err := strconv.ParseFloat(f.read("Cantidad", ""), 64)
		if err != nil || math.IsNaN(qty) {
			continue // fila sin cantidad válida: se descarta
		}
		unidad := f.readEnum("Unidad", entity.Unidades, "kg")
		filas = append(filas, apiclient.BOMRow{
			IDInsumo: id,
			Cantidad: decimal.NewFromFloat(qty),
			Unidad:   unidad,
		})
	}
	return filas, nil
}

// InsumoForm captura los datos de un insumo.
func (f *Forms) InsumoForm(existing *entity.Insumo) (apiclient.InsumoData, error) {
	var data apiclient.InsumoData
	var defNombre, defUnidad, defCosto, defStock, defMin string
	if existing != nil {
		defNombre = existing.Nombre
		defUnidad = existing.UnidadMedida
		defCosto = existing.CostoUnitario.String()
		defStock = existing.StockActual.String()
		defMin = existing.StockMinimo.String()
	}

	data.Nombre = f.read("Nombre del Insumo", defNombre)
	data.UnidadMedida = f.readEnum("Unidad de Medida", entity.Unidades, defUnidad)

	costo, errCosto := strconv.ParseFloat(f.read("Costo Unitario", defCosto), 64)
	stock, errStock := strconv.ParseFloat(f.read("Stock Actual", defStock), 64)
	min, errMin := strconv.ParseFloat(f.read("Stock Mínimo", defMin), 64)
	if data.Nombre == "" || errCosto != nil || errStock != nil || errMin != nil {
		return data, domain.ErrCamposRequeridos
	}
	data.CostoUnitario = decimal.NewFromFloat(costo)
	data.StockActual = decimal.NewFromFloat(stock)
	data.StockMinimo = decimal.NewFromFloat(min)
	return data, nil
}

// readEnum lee un valor restringido a opciones; entrada fuera del enum
// cae al valor por defecto (o a la primera opción).
func (f *Forms) readEnum(label string, opciones []string, def string) string {
	if def == "" && len(opciones) > 0 {
		def = opciones[0]
	}
	v := f.read(label+" ("+strings.Join(opciones, "/")+")", def)
	for _, o := range opciones {
		if strings.EqualFold(v, o) {
			return o
		}
	}
	return def
}
