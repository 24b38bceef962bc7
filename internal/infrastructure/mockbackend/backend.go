// Package mockbackend implementa el backend de demostración en memoria.
//
// Sirve el mismo contrato RPC que el backend real (`{action, ...params,
// token}` → `{success, ...}`) y lo consumen tres superficies: el
// transporte mock (respuestas locales), el transporte puente (DoPost en
// proceso) y cmd/mockserver (POST /api vía Fiber). Es un accesorio de
// desarrollo: no autoriza de verdad ni persiste entre ejecuciones.
package mockbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/pkg/jwt"
)

// Config parámetros del backend de demostración.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	JWTExpMins int
}

// Backend estado en memoria de la demo. Los altas/ediciones persisten
// durante la ejecución para que la UI se sienta coherente.
type Backend struct {
	mu  sync.Mutex
	cfg Config

	productos []entity.Producto
	insumos   []entity.Insumo
	ventas    []entity.VentaDetalle
	bom       map[string][]entity.BOMEntry
	usuario   *entity.Usuario
}

// New construye el backend con el catálogo de demostración sembrado.
func New(cfg Config) *Backend {
	b := &Backend{
		cfg:       cfg,
		productos: seedProductos(),
		insumos:   seedInsumos(),
		ventas:    seedVentas(),
		bom:       seedBOM(),
	}
	for i := range b.productos {
		b.recalcularCosto(&b.productos[i])
	}
	return b
}

// DoPost contrato del puente embebido: cuerpo de petición en texto,
// respuesta en texto.
func (b *Backend) DoPost(_ context.Context, body string) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", fmt.Errorf("mockbackend: payload inválido: %w", err)
	}
	action, _ := payload["action"].(string)
	out, err := json.Marshal(b.Handle(action, payload))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Handle despacha una acción y devuelve el sobre de respuesta.
// Acciones desconocidas resuelven con un marcador de éxito pelado.
func (b *Backend) Handle(action string, params map[string]any) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch action {
	case "login":
		return b.login(params)
	case "validateSession":
		return b.validateSession(params)
	case "getProducts":
		return b.getProducts(params)
	case "getInsumos":
		return ok(map[string]any{"insumos": b.insumos})
	case "getStockAlerts":
		return ok(map[string]any{"alerts": b.stockAlerts()})
	case "getSales":
		return b.getSales(params)
	case "getSaleDetail":
		return b.getSaleDetail(params)
	case "createSale":
		return b.createSale(params)
	case "createProduct":
		return b.createProduct(params)
	case "updateProduct":
		return b.updateProduct(params)
	case "deleteProduct":
		return b.deleteProduct(params)
	case "updateStock":
		return b.updateStock(params)
	case "updateProductStock":
		return b.updateProductStock(params)
	case "registerProduction":
		return b.registerProduction(params)
	case "getBOM":
		return b.getBOM(params)
	case "setBOM":
		return b.setBOM(params)
	case "createInsumo":
		return b.createInsumo(params)
	case "updateInsumo":
		return b.updateInsumo(params)
	case "getSalesReport":
		return b.salesReport()
	case "getProductSalesReport":
		return b.productSalesReport()
	case "getHistoricalProjection":
		return b.historicalProjection()
	case "calculateProjectionDetails":
		return b.calculateProjection(params)
	default:
		return map[string]any{"success": true}
	}
}

// ── Autenticación ─────────────────────────────────────────────────────────────

// login acepta cualquier email con la contraseña de demo "123".
func (b *Backend) login(params map[string]any) map[string]any {
	email := pstr(params, "email")
	if pstr(params, "password") != "123" {
		return fail("Credenciales inválidas (Use pass: 123)")
	}
	user := entity.Usuario{Email: email, Nombre: "Usuario Demo", Rol: "director"}
	token, err := jwt.Generate(b.cfg.JWTSecret, user.Email, user.Nombre, user.Rol, b.cfg.JWTIssuer, b.cfg.JWTExpMins)
	if err != nil {
		return fail("no se pudo emitir el token: " + err.Error())
	}
	b.usuario = &user
	return ok(map[string]any{"token": token, "user": user})
}

func (b *Backend) validateSession(params map[string]any) map[string]any {
	email, nombre, rol, err := jwt.Parse(b.cfg.JWTSecret, pstr(params, "token"))
	if err != nil {
		return fail("sesión inválida o expirada")
	}
	return ok(map[string]any{"user": entity.Usuario{Email: email, Nombre: nombre, Rol: rol}})
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (b *Backend) getProducts(params map[string]any) map[string]any {
	soloActivos, _ := params["activos"].(bool)
	out := make([]entity.Producto, 0, len(b.productos))
	for _, p := range b.productos {
		if soloActivos && !p.Activo {
			continue
		}
		out = append(out, p)
	}
	return ok(map[string]any{"products": out})
}

func (b *Backend) createProduct(params map[string]any) map[string]any {
	var data entity.Producto
	if err := decode(params["data"], &data); err != nil {
		return fail("datos de producto inválidos")
	}
	data.ID = "P-" + uuid.NewString()[:8]
	data.Activo = true
	b.recalcularCosto(&data)
	b.productos = append(b.productos, data)
	return ok(map[string]any{"message": "Producto creado con éxito", "productId": data.ID})
}

func (b *Backend) updateProduct(params map[string]any) map[string]any {
	p := b.findProducto(pstr(params, "id"))
	if p == nil {
		return fail("producto no encontrado")
	}
	var data entity.Producto
	if err := decode(params["data"], &data); err != nil {
		return fail("datos de producto inválidos")
	}
	p.Nombre = data.Nombre
	p.Categoria = data.Categoria
	p.PrecioVenta = data.PrecioVenta
	p.ImagenURL = data.ImagenURL
	b.recalcularCosto(p)
	return ok(map[string]any{"message": "Producto actualizado"})
}

func (b *Backend) deleteProduct(params map[string]any) map[string]any {
	id := pstr(params, "id")
	for i := range b.productos {
		if b.productos[i].ID == id {
			b.productos = append(b.productos[:i], b.productos[i+1:]...)
			delete(b.bom, id)
			return ok(map[string]any{"message": "Producto eliminado"})
		}
	}
	return fail("producto no encontrado")
}

func (b *Backend) updateProductStock(params map[string]any) map[string]any {
	p := b.findProducto(pstr(params, "id"))
	if p == nil {
		return fail("producto no encontrado")
	}
	p.Stock = p.Stock.Add(pdec(params, "cantidad"))
	return ok(map[string]any{"message": "Stock actualizado", "stockNuevo": p.Stock})
}

// registerProduction suma unidades producidas al stock del producto y
// descuenta los insumos de la receta.
func (b *Backend) registerProduction(params map[string]any) map[string]any {
	p := b.findProducto(pstr(params, "id"))
	if p == nil {
		return fail("producto no encontrado")
	}
	qty := pdec(params, "cantidad")
	if !qty.IsPositive() {
		return fail("cantidad inválida")
	}
	for _, e := range b.bom[p.ID] {
		if ins := b.findInsumo(e.IDInsumo); ins != nil {
			ins.StockActual = ins.StockActual.Sub(e.Cantidad.Mul(qty))
		}
	}
	p.Stock = p.Stock.Add(qty)
	return ok(map[string]any{"message": "Producción registrada", "stockNuevo": p.Stock})
}

// ── Recetas ───────────────────────────────────────────────────────────────────

func (b *Backend) getBOM(params map[string]any) map[string]any {
	entries := b.bom[pstr(params, "productId")]
	if entries == nil {
		entries = []entity.BOMEntry{}
	}
	return ok(map[string]any{"bom": entries})
}

// setBOM reemplaza la receta completa y recalcula costo y margen.
func (b *Backend) setBOM(params map[string]any) map[string]any {
	productID := pstr(params, "productId")
	var entries []entity.BOMEntry
	if err := decode(params["insumos"], &entries); err != nil {
		return fail("receta inválida")
	}
	for i := range entries {
		entries[i].IDProducto = productID
		if entries[i].Cantidad.IsNegative() {
			return fail("las cantidades de la receta no pueden ser negativas")
		}
	}
	b.bom[productID] = entries
	if p := b.findProducto(productID); p != nil {
		b.recalcularCosto(p)
	}
	return ok(map[string]any{"message": "BOM actualizado"})
}

// recalcularCosto costo = Σ cantidad × costo unitario del insumo;
// margen = (precio − costo) / precio × 100.
func (b *Backend) recalcularCosto(p *entity.Producto) {
	costo := decimal.Zero
	for _, e := range b.bom[p.ID] {
		if ins := b.findInsumo(e.IDInsumo); ins != nil {
			costo = costo.Add(e.Cantidad.Mul(ins.CostoUnitario))
		}
	}
	p.CostoProduccion = costo
	if p.PrecioVenta.IsPositive() {
		p.Margen = p.PrecioVenta.Sub(costo).Div(p.PrecioVenta).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		p.Margen = decimal.Zero
	}
}

// ── Insumos ───────────────────────────────────────────────────────────────────

func (b *Backend) createInsumo(params map[string]any) map[string]any {
	var data entity.Insumo
	if err := decode(params["data"], &data); err != nil {
		return fail("datos de insumo inválidos")
	}
	data.ID = "I-" + uuid.NewString()[:8]
	b.insumos = append(b.insumos, data)
	return ok(map[string]any{"message": "Insumo creado con éxito", "insumoId": data.ID})
}

func (b *Backend) updateInsumo(params map[string]any) map[string]any {
	ins := b.findInsumo(pstr(params, "id"))
	if ins == nil {
		return fail("insumo no encontrado")
	}
	var data entity.Insumo
	if err := decode(params["data"], &data); err != nil {
		return fail("datos de insumo inválidos")
	}
	id := ins.ID
	*ins = data
	ins.ID = id
	return ok(map[string]any{"message": "Insumo actualizado"})
}

func (b *Backend) updateStock(params map[string]any) map[string]any {
	ins := b.findInsumo(pstr(params, "id"))
	if ins == nil {
		return fail("insumo no encontrado")
	}
	ins.StockActual = ins.StockActual.Add(pdec(params, "cantidad"))
	return ok(map[string]any{"message": "Stock actualizado", "stockNuevo": ins.StockActual})
}

// stockAlerts marca bajo cuando actual ≤ mínimo y crítico cuando además
// actual ≤ mínimo/2.
func (b *Backend) stockAlerts() []entity.StockAlert {
	alerts := []entity.StockAlert{}
	dos := decimal.NewFromInt(2)
	for _, ins := range b.insumos {
		if ins.StockActual.GreaterThan(ins.StockMinimo) {
			continue
		}
		nivel := "bajo"
		if ins.StockActual.LessThanOrEqual(ins.StockMinimo.Div(dos)) {
			nivel = "critico"
		}
		alerts = append(alerts, entity.StockAlert{
			ID: ins.ID, Nombre: ins.Nombre,
			StockActual: ins.StockActual, StockMinimo: ins.StockMinimo,
			Nivel: nivel,
		})
	}
	return alerts
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (b *Backend) getSales(params map[string]any) map[string]any {
	inicio := pstr(params, "fechaInicio")
	fin := pstr(params, "fechaFin")
	out := []entity.Venta{}
	for _, v := range b.ventas {
		// El formato "2006-01-02 15:04:05" ordena lexicográficamente.
		if inicio != "" && v.Fecha < inicio {
			continue
		}
		if fin != "" && v.Fecha > fin {
			continue
		}
		out = append(out, v.Venta)
	}
	return ok(map[string]any{"sales": out})
}

func (b *Backend) getSaleDetail(params map[string]any) map[string]any {
	id := pstr(params, "idVenta")
	for _, v := range b.ventas {
		if v.IDVenta == id {
			return ok(map[string]any{"venta": v})
		}
	}
	return fail("venta no encontrada")
}

func (b *Backend) createSale(params map[string]any) map[string]any {
	var items []entity.VentaItem
	if err := decode(params["items"], &items); err != nil || len(items) == 0 {
		return fail("la venta no tiene renglones")
	}
	subtotal := decimal.Zero
	for i := range items {
		items[i].Subtotal = items[i].PrecioUnitario.Mul(items[i].Cantidad)
		subtotal = subtotal.Add(items[i].Subtotal)
		if p := b.findProducto(items[i].IDProducto); p != nil {
			items[i].NombreProducto = p.Nombre
			p.Stock = p.Stock.Sub(items[i].Cantidad)
		}
	}
	descuento := pdec(params, "descuento")
	total := subtotal.Sub(descuento)
	if total.IsNegative() {
		total = decimal.Zero
	}
	fecha := pstr(params, "fecha")
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02 15:04:05")
	}
	venta := entity.VentaDetalle{
		Venta: entity.Venta{
			IDVenta:    "V-" + strings.ToUpper(uuid.NewString()[:8]),
			Fecha:      fecha,
			Cajero:     pstr(params, "cajero"),
			Total:      total,
			MetodoPago: pstr(params, "metodoPago"),
			Estado:     "completada",
		},
		Items:    items,
		Subtotal: subtotal, Descuento: descuento,
	}
	b.ventas = append(b.ventas, venta)
	return ok(map[string]any{"message": "Venta registrada con éxito", "idVenta": venta.IDVenta})
}

// ── Informes ──────────────────────────────────────────────────────────────────

type totalEntry struct {
	Total decimal.Decimal `json:"total"`
}

// salesReport agrega ventas por día y por método de pago. La demo no
// filtra por periodo: su histórico sembrado es corto.
func (b *Backend) salesReport() map[string]any {
	porDia := map[string]totalEntry{}
	porMetodo := map[string]totalEntry{}
	for _, v := range b.ventas {
		dia := v.Fecha
		if len(dia) > 10 {
			dia = dia[:10]
		}
		porDia[dia] = totalEntry{Total: porDia[dia].Total.Add(v.Total)}
		porMetodo[v.MetodoPago] = totalEntry{Total: porMetodo[v.MetodoPago].Total.Add(v.Total)}
	}
	return ok(map[string]any{"reporte": map[string]any{
		"ventasPorDia":    porDia,
		"ventasPorMetodo": porMetodo,
	}})
}

type productSalesRow struct {
	Nombre          string          `json:"nombre"`
	CantidadVendida decimal.Decimal `json:"cantidadVendida"`
	TotalVentas     decimal.Decimal `json:"totalVentas"`
}

// productSalesReport agrega renglones por producto, ordenado por
// cantidad vendida descendente.
func (b *Backend) productSalesReport() map[string]any {
	porProducto := map[string]*productSalesRow{}
	for _, v := range b.ventas {
		for _, it := range v.Items {
			row := porProducto[it.NombreProducto]
			if row == nil {
				row = &productSalesRow{Nombre: it.NombreProducto}
				porProducto[it.NombreProducto] = row
			}
			row.CantidadVendida = row.CantidadVendida.Add(it.Cantidad)
			row.TotalVentas = row.TotalVentas.Add(it.Subtotal)
		}
	}
	rows := make([]productSalesRow, 0, len(porProducto))
	for _, r := range porProducto {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CantidadVendida.GreaterThan(rows[j].CantidadVendida)
	})
	return ok(map[string]any{"reporte": rows})
}

// ── Proyecciones ──────────────────────────────────────────────────────────────

// historicalProjection deriva metas del histórico de ventas.
func (b *Backend) historicalProjection() map[string]any {
	vendidas := map[string]decimal.Decimal{}
	for _, v := range b.ventas {
		for _, it := range v.Items {
			vendidas[it.IDProducto] = vendidas[it.IDProducto].Add(it.Cantidad)
		}
	}
	items := make([]entity.ProyeccionItem, 0, len(vendidas))
	for id, qty := range vendidas {
		nombre := id
		if p := b.findProducto(id); p != nil {
			nombre = p.Nombre
		}
		items = append(items, entity.ProyeccionItem{IDProducto: id, Nombre: nombre, Cantidad: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].IDProducto < items[j].IDProducto })
	resumen, compras := b.proyectar(items)
	return ok(map[string]any{"summary": resumen, "items": items, "shoppingList": compras})
}

func (b *Backend) calculateProjection(params map[string]any) map[string]any {
	var items []entity.ProyeccionItem
	if err := decode(params["items"], &items); err != nil {
		return fail("proyección inválida")
	}
	resumen, compras := b.proyectar(items)
	return ok(map[string]any{"summary": resumen, "items": items, "shoppingList": compras})
}

// proyectar calcula ingreso, costo de materia prima y lista de compras
// para un conjunto de metas.
func (b *Backend) proyectar(items []entity.ProyeccionItem) (entity.ProyeccionResumen, []entity.CompraItem) {
	ingreso := decimal.Zero
	costo := decimal.Zero
	porInsumo := map[string]*entity.CompraItem{}
	for _, it := range items {
		p := b.findProducto(it.IDProducto)
		if p == nil || !it.Cantidad.IsPositive() {
			continue
		}
		ingreso = ingreso.Add(p.PrecioVenta.Mul(it.Cantidad))
		for _, e := range b.bom[p.ID] {
			ins := b.findInsumo(e.IDInsumo)
			if ins == nil {
				continue
			}
			req := e.Cantidad.Mul(it.Cantidad)
			costo = costo.Add(req.Mul(ins.CostoUnitario))
			row := porInsumo[ins.ID]
			if row == nil {
				row = &entity.CompraItem{IDInsumo: ins.ID, Nombre: ins.Nombre, Unidad: e.Unidad, CostoUnitario: ins.CostoUnitario}
				porInsumo[ins.ID] = row
			}
			row.Cantidad = row.Cantidad.Add(req)
		}
	}
	compras := make([]entity.CompraItem, 0, len(porInsumo))
	for _, r := range porInsumo {
		compras = append(compras, *r)
	}
	sort.Slice(compras, func(i, j int) bool { return compras[i].IDInsumo < compras[j].IDInsumo })
	return entity.ProyeccionResumen{
		IngresoEst:  ingreso,
		CostoMatEst: costo,
		GananciaEst: ingreso.Sub(costo),
	}, compras
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (b *Backend) findProducto(id string) *entity.Producto {
	for i := range b.productos {
		if b.productos[i].ID == id {
			return &b.productos[i]
		}
	}
	return nil
}

func (b *Backend) findInsumo(id string) *entity.Insumo {
	for i := range b.insumos {
		if b.insumos[i].ID == id {
			return &b.insumos[i]
		}
	}
	return nil
}

func ok(fields map[string]any) map[string]any {
	fields["success"] = true
	return fields
}

func fail(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}

func pstr(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// pdec lee un número de los params JSON (float64 o string).
func pdec(params map[string]any, key string) decimal.Decimal {
	switch v := params[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case string:
		if n, err := decimal.NewFromString(v); err == nil {
			return n
		}
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// decode re-serializa un valor de params hacia un tipo concreto.
func decode(v any, out any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
