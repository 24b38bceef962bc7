// Package apiclient expone el contrato RPC del backend como métodos
// tipados: un método por acción, con structs de petición/respuesta
// validados al decodificar. El envoltorio genérico `{action, ...}` queda
// confinado al transporte.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/transport"
)

// Client cliente tipado del backend.
type Client struct {
	t transport.Transport
}

// New construye el cliente sobre el transporte ya seleccionado.
func New(t transport.Transport) *Client {
	return &Client{t: t}
}

// call ejecuta la acción y decodifica el sobre completo en out.
func (c *Client) call(ctx context.Context, action string, params map[string]any, out any) error {
	raw, err := c.t.Call(ctx, action, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: respuesta de %s malformada: %w", action, err)
	}
	return nil
}

// ── Autenticación ─────────────────────────────────────────────────────────────

// LoginResponse respuesta de la acción login.
type LoginResponse struct {
	Token string         `json:"token"`
	User  entity.Usuario `json:"user"`
}

// Login autentica al usuario y devuelve token + perfil.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.call(ctx, "login", map[string]any{"email": email, "password": password}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("apiclient: login sin token en la respuesta")
	}
	return &out, nil
}

// ValidateSession revalida el token vigente contra el backend.
// El arranque no la invoca (la sesión restaurada se asume válida).
func (c *Client) ValidateSession(ctx context.Context) (*entity.Usuario, error) {
	var out struct {
		User entity.Usuario `json:"user"`
	}
	if err := c.call(ctx, "validateSession", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ── Catálogo y stock ──────────────────────────────────────────────────────────

// GetProducts lista productos; soloActivos filtra el catálogo del POS.
func (c *Client) GetProducts(ctx context.Context, soloActivos bool) ([]entity.Producto, error) {
	var out struct {
		Products []entity.Producto `json:"products"`
	}
	if err := c.call(ctx, "getProducts", map[string]any{"activos": soloActivos}, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetInsumos lista la materia prima.
func (c *Client) GetInsumos(ctx context.Context) ([]entity.Insumo, error) {
	var out struct {
		Insumos []entity.Insumo `json:"insumos"`
	}
	if err := c.call(ctx, "getInsumos", nil, &out); err != nil {
		return nil, err
	}
	return out.Insumos, nil
}

// GetStockAlerts lista las alertas precomputadas de stock bajo/crítico.
func (c *Client) GetStockAlerts(ctx context.Context) ([]entity.StockAlert, error) {
	var out struct {
		Alerts []entity.StockAlert `json:"alerts"`
	}
	if err := c.call(ctx, "getStockAlerts", nil, &out); err != nil {
		return nil, err
	}
	return out.Alerts, nil
}

// UpdateStock aplica un delta con signo al stock de un insumo y devuelve
// el stock resultante.
func (c *Client) UpdateStock(ctx context.Context, id string, cantidad decimal.Decimal) (decimal.Decimal, error) {
	return c.stockCall(ctx, "updateStock", id, cantidad)
}

// UpdateProductStock aplica un delta con signo al stock de un producto.
func (c *Client) UpdateProductStock(ctx context.Context, id string, cantidad decimal.Decimal) (decimal.Decimal, error) {
	return c.stockCall(ctx, "updateProductStock", id, cantidad)
}

func (c *Client) stockCall(ctx context.Context, action, id string, cantidad decimal.Decimal) (decimal.Decimal, error) {
	var out struct {
		StockNuevo decimal.Decimal `json:"stockNuevo"`
	}
	err := c.call(ctx, action, map[string]any{"id": id, "cantidad": cantidad}, &out)
	return out.StockNuevo, err
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductoData datos editables de un producto (el costo lo calcula el
// backend desde la receta).
type ProductoData struct {
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	ImagenURL   string          `json:"imagenUrl"`
}

// CreateProduct da de alta un producto y devuelve su ID.
func (c *Client) CreateProduct(ctx context.Context, data ProductoData) (string, error) {
	var out struct {
		ProductID string `json:"productId"`
	}
	if err := c.call(ctx, "createProduct", map[string]any{"data": data}, &out); err != nil {
		return "", err
	}
	return out.ProductID, nil
}

// UpdateProduct actualiza los datos editables de un producto.
func (c *Client) UpdateProduct(ctx context.Context, id string, data ProductoData) error {
	return c.call(ctx, "updateProduct", map[string]any{"id": id, "data": data}, nil)
}

// DeleteProduct elimina un producto. El llamador debe haber confirmado
// con el usuario: la operación es irreversible.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.call(ctx, "deleteProduct", map[string]any{"id": id}, nil)
}

// RegisterProduction registra unidades producidas; el backend descuenta
// los insumos de la receta y devuelve el stock nuevo del producto.
func (c *Client) RegisterProduction(ctx context.Context, id string, cantidad int) (decimal.Decimal, error) {
	var out struct {
		StockNuevo decimal.Decimal `json:"stockNuevo"`
	}
	err := c.call(ctx, "registerProduction", map[string]any{"id": id, "cantidad": cantidad}, &out)
	return out.StockNuevo, err
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// BOMRow fila de receta capturada en el formulario de producto.
type BOMRow struct {
	IDInsumo string          `json:"idInsumo"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Unidad   string          `json:"unidad"`
}

// GetBOM obtiene la receta de un producto.
func (c *Client) GetBOM(ctx context.Context, productID string) ([]entity.BOMEntry, error) {
	var out struct {
		BOM []entity.BOMEntry `json:"bom"`
	}
	if err := c.call(ctx, "getBOM", map[string]any{"productId": productID}, &out); err != nil {
		return nil, err
	}
	return out.BOM, nil
}

// SetBOM reemplaza la receta completa del producto con las filas dadas.
func (c *Client) SetBOM(ctx context.Context, productID string, filas []BOMRow) error {
	return c.call(ctx, "setBOM", map[string]any{"productId": productID, "insumos": filas}, nil)
}

// ── Insumos ───────────────────────────────────────────────────────────────────

// InsumoData datos editables de un insumo.
type InsumoData struct {
	Nombre        string          `json:"nombre"`
	UnidadMedida  string          `json:"unidadMedida"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	StockActual   decimal.Decimal `json:"stockActual"`
	StockMinimo   decimal.Decimal `json:"stockMinimo"`
}

// CreateInsumo da de alta un insumo.
func (c *Client) CreateInsumo(ctx context.Context, data InsumoData) error {
	return c.call(ctx, "createInsumo", map[string]any{"data": data}, nil)
}

// UpdateInsumo actualiza un insumo.
func (c *Client) UpdateInsumo(ctx context.Context, id string, data InsumoData) error {
	return c.call(ctx, "updateInsumo", map[string]any{"id": id, "data": data}, nil)
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleItem renglón enviado en el checkout.
type SaleItem struct {
	IDProducto     string          `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CreateSaleRequest carga del checkout.
type CreateSaleRequest struct {
	Items      []SaleItem
	MetodoPago string
	Descuento  decimal.Decimal
	Cajero     string
}

// CreateSaleResponse confirmación del backend.
type CreateSaleResponse struct {
	IDVenta string `json:"idVenta"`
	Message string `json:"message"`
}

// CreateSale registra la venta; el backend asigna ID y estado.
func (c *Client) CreateSale(ctx context.Context, req CreateSaleRequest) (*CreateSaleResponse, error) {
	var out CreateSaleResponse
	err := c.call(ctx, "createSale", map[string]any{
		"items":      req.Items,
		"metodoPago": req.MetodoPago,
		"descuento":  req.Descuento,
		"cajero":     req.Cajero,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSales lista ventas dentro del rango de fechas (formato
// "2006-01-02 15:04:05", inclusivo).
func (c *Client) GetSales(ctx context.Context, fechaInicio, fechaFin string) ([]entity.Venta, error) {
	var out struct {
		Sales []entity.Venta `json:"sales"`
	}
	err := c.call(ctx, "getSales", map[string]any{"fechaInicio": fechaInicio, "fechaFin": fechaFin}, &out)
	if err != nil {
		return nil, err
	}
	return out.Sales, nil
}

// GetSaleDetail obtiene una venta con sus renglones y totales.
func (c *Client) GetSaleDetail(ctx context.Context, idVenta string) (*entity.VentaDetalle, error) {
	var out struct {
		Venta entity.VentaDetalle `json:"venta"`
	}
	if err := c.call(ctx, "getSaleDetail", map[string]any{"idVenta": idVenta}, &out); err != nil {
		return nil, err
	}
	return &out.Venta, nil
}

// ── Informes ──────────────────────────────────────────────────────────────────

// TotalEntry total agregado de un corte del informe.
type TotalEntry struct {
	Total decimal.Decimal `json:"total"`
}

// SalesReport informe agregado de ventas.
type SalesReport struct {
	VentasPorDia    map[string]TotalEntry `json:"ventasPorDia"`
	VentasPorMetodo map[string]TotalEntry `json:"ventasPorMetodo"`
}

// ProductSales renglón del informe por producto.
type ProductSales struct {
	Nombre          string          `json:"nombre"`
	CantidadVendida decimal.Decimal `json:"cantidadVendida"`
	TotalVentas     decimal.Decimal `json:"totalVentas"`
}

// GetSalesReport obtiene el informe agregado del periodo.
func (c *Client) GetSalesReport(ctx context.Context, periodo string) (*SalesReport, error) {
	var out struct {
		Reporte SalesReport `json:"reporte"`
	}
	if err := c.call(ctx, "getSalesReport", map[string]any{"periodo": periodo}, &out); err != nil {
		return nil, err
	}
	return &out.Reporte, nil
}

// GetProductSalesReport obtiene el informe por producto del periodo.
func (c *Client) GetProductSalesReport(ctx context.Context, periodo string) ([]ProductSales, error) {
	var out struct {
		Reporte []ProductSales `json:"reporte"`
	}
	if err := c.call(ctx, "getProductSalesReport", map[string]any{"periodo": periodo}, &out); err != nil {
		return nil, err
	}
	return out.Reporte, nil
}

// ── Proyecciones ──────────────────────────────────────────────────────────────

// Proyeccion resultado de una proyección: resumen, metas y lista de compras.
type Proyeccion struct {
	Summary      entity.ProyeccionResumen `json:"summary"`
	Items        []entity.ProyeccionItem  `json:"items"`
	ShoppingList []entity.CompraItem      `json:"shoppingList"`
}

// GetHistoricalProjection obtiene la proyección derivada del histórico.
func (c *Client) GetHistoricalProjection(ctx context.Context) (*Proyeccion, error) {
	var out Proyeccion
	if err := c.call(ctx, "getHistoricalProjection", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CalculateProjectionDetails calcula resumen y lista de compras para las
// metas manuales con cantidad > 0.
func (c *Client) CalculateProjectionDetails(ctx context.Context, items []entity.ProyeccionItem) (*Proyeccion, error) {
	var out Proyeccion
	if err := c.call(ctx, "calculateProjectionDetails", map[string]any{"items": items}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
