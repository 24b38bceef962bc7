// Package controller orquesta las vistas del POS: carga datos del
// backend, mantiene el estado de la aplicación y delega el dibujo a los
// renderers. Todo el estado vive en AppState; no hay variables globales.
package controller

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pasteleria-pos/internal/application/report"
	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
)

// Vistas navegables.
const (
	ViewLogin       = "login"
	ViewDashboard   = "dashboard"
	ViewPOS         = "pos"
	ViewProducts    = "products"
	ViewInventory   = "inventory"
	ViewSales       = "sales"
	ViewReports     = "reports"
	ViewProjections = "projections"
)

// AppState estado completo de la sesión de UI. Se crea una vez al
// arranque y se resetea en el logout.
type AppState struct {
	Usuario *entity.Usuario
	Vista   string

	// POS
	Productos  []entity.Producto
	Filtro     string
	Cart       *pos.Cart
	Descuento  decimal.Decimal
	MetodoPago string

	// Inventario
	Insumos []entity.Insumo
	Alerts  []entity.StockAlert

	// Productos (administración)
	Catalogo []entity.Producto

	// Ventas
	Rango  pos.DateRange
	Ventas []entity.Venta

	// Informes
	Charts     *report.Registry
	RepPeriodo string

	// Proyecciones. Las metas manuales sobreviven al cambio de modo:
	// volver a manual muestra las cantidades capturadas antes.
	ProyManual    bool
	ProyItems     []entity.ProyeccionItem
	ProyAutoItems []entity.ProyeccionItem
	ProyResumen   entity.ProyeccionResumen
	ProyCompras   []entity.CompraItem

	// Operaciones en vuelo, por clave. Mientras una clave está activa
	// la misma operación no puede dispararse de nuevo.
	busy map[string]bool
}

// NewAppState estado inicial: carrito vacío, sin sesión, vista de login.
func NewAppState() *AppState {
	return &AppState{
		Vista:      ViewLogin,
		Cart:       &pos.Cart{},
		MetodoPago: "Efectivo",
		Charts:     report.NewRegistry(),
		RepPeriodo: pos.PeriodoMes,
		busy:       make(map[string]bool),
	}
}

// Reset vuelve al estado inicial conservando nada de la sesión anterior.
func (s *AppState) Reset() {
	*s = *NewAppState()
}

// Busy indica si la operación con esa clave sigue en vuelo.
func (s *AppState) Busy(key string) bool { return s.busy[key] }

// beginOp marca la operación en vuelo; devuelve false si ya lo estaba.
func (s *AppState) beginOp(key string) bool {
	if s.busy[key] {
		return false
	}
	s.busy[key] = true
	return true
}

func (s *AppState) endOp(key string) { delete(s.busy, key) }
