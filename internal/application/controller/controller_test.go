package controller_test

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/application/controller"
	"github.com/jhoicas/pasteleria-pos/internal/domain"
	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/mockbackend"
	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/ticket"
	"github.com/jhoicas/pasteleria-pos/internal/session"
	"github.com/jhoicas/pasteleria-pos/internal/transport"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// entorno arma un controlador completo sobre el backend de demostración.
// llamadas cuenta las acciones que llegaron al backend y fallar fuerza
// el rechazo de una acción concreta.
type entorno struct {
	ctrl     *controller.Controller
	out      *bytes.Buffer
	mu       sync.Mutex
	llamadas map[string]int
	fallar   map[string]string
	periodos map[string]string
}

func (e *entorno) cuenta(action string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.llamadas[action]
}

// periodoVisto último periodo que llegó al backend para esa acción.
func (e *entorno) periodoVisto(action string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.periodos[action]
}

func newEntorno(t *testing.T) *entorno {
	t.Helper()
	backend := mockbackend.New(mockbackend.Config{
		JWTSecret: "test-secret", JWTIssuer: "test", JWTExpMins: 60,
	})

	e := &entorno{
		out:      &bytes.Buffer{},
		llamadas: map[string]int{},
		fallar:   map[string]string{},
		periodos: map[string]string{},
	}
	respond := func(action string, params map[string]any) map[string]any {
		e.mu.Lock()
		e.llamadas[action]++
		if p, ok := params["periodo"].(string); ok {
			e.periodos[action] = p
		}
		msg, forzar := e.fallar[action]
		e.mu.Unlock()
		if forzar {
			return map[string]any{"success": false, "error": msg}
		}
		return backend.Handle(action, params)
	}

	sess, err := session.New(filepath.Join(t.TempDir(), "session.json"), logger.Nop())
	require.NoError(t, err)
	api := apiclient.New(transport.NewMockTransport(respond, sess, 0))
	printer := ticket.NewPrinter(t.TempDir(), 0, logger.Nop())
	e.ctrl = controller.New(api, sess, printer, e.out, logger.Nop())
	return e
}

func (e *entorno) login(t *testing.T) {
	t.Helper()
	require.NoError(t, e.ctrl.Login(context.Background(), "demo@pasteleria.mx", "123"))
	e.out.Reset()
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoNavegaAlDashboard(t *testing.T) {
	e := newEntorno(t)

	require.NoError(t, e.ctrl.Login(context.Background(), "demo@pasteleria.mx", "123"))

	st := e.ctrl.State()
	assert.Equal(t, controller.ViewDashboard, st.Vista)
	assert.Equal(t, "Usuario Demo", st.Usuario.Nombre)
	assert.Contains(t, e.out.String(), "Bienvenido, Usuario Demo")
}

func TestLogin_RechazadoMuestraElMensajeDelBackend(t *testing.T) {
	e := newEntorno(t)

	err := e.ctrl.Login(context.Background(), "demo@pasteleria.mx", "mala")
	require.Error(t, err)
	assert.Contains(t, e.out.String(), "Credenciales inválidas (Use pass: 123)")
	assert.Equal(t, controller.ViewLogin, e.ctrl.State().Vista)
}

func TestNavigate_SinSesionRechaza(t *testing.T) {
	e := newEntorno(t)
	err := e.ctrl.Navigate(context.Background(), controller.ViewPOS)
	assert.ErrorIs(t, err, domain.ErrSinSesion)
}

func TestLogout_ReseteaTodoElEstado(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	require.NoError(t, e.ctrl.Navigate(context.Background(), controller.ViewPOS))
	require.NoError(t, e.ctrl.AddToCart("1"))

	e.ctrl.Logout()

	st := e.ctrl.State()
	assert.Nil(t, st.Usuario)
	assert.Equal(t, controller.ViewLogin, st.Vista)
	assert.True(t, st.Cart.IsEmpty(), "el carrito no debe sobrevivir al logout")
}

// ──────────────────────────────────────────────────────────────────────────────
// POS y checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CarritoVacioNoLlamaAlBackend(t *testing.T) {
	e := newEntorno(t)
	e.login(t)

	err := e.ctrl.Checkout(context.Background())

	assert.ErrorIs(t, err, domain.ErrCarritoVacio)
	assert.Contains(t, e.out.String(), "El carrito está vacío")
	assert.Zero(t, e.cuenta("createSale"), "un carrito vacío no debe generar venta")
}

func TestCheckout_RegistraVentaYLimpiaElCarrito(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewPOS))
	require.NoError(t, e.ctrl.AddToCart("1"))
	e.ctrl.SetDescuento(decimal.NewFromInt(50))

	require.NoError(t, e.ctrl.Checkout(ctx))

	st := e.ctrl.State()
	assert.True(t, st.Cart.IsEmpty(), "el checkout deja el carrito listo para la siguiente venta")
	assert.True(t, st.Descuento.IsZero(), "el descuento se resetea con el carrito")
	assert.Equal(t, 1, e.cuenta("createSale"))
	assert.Contains(t, e.out.String(), "Venta registrada con éxito")
}

func TestAddToCart_ProductoInexistente(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	require.NoError(t, e.ctrl.Navigate(context.Background(), controller.ViewPOS))

	assert.ErrorIs(t, e.ctrl.AddToCart("999"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos: guardado en dos pasos
// ──────────────────────────────────────────────────────────────────────────────

// El guardado es producto primero y receta después, sin transacción. Si
// la receta falla el producto queda guardado y el usuario recibe el
// aviso; no hay rollback.
func TestSaveProduct_FallaDeRecetaNoRevierteElProducto(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProducts))
	e.fallar["setBOM"] = "receta inválida"
	e.out.Reset()

	err := e.ctrl.SaveProduct(ctx, "", apiclient.ProductoData{
		Nombre: "Tarta de Fresa", Categoria: "Pasteles",
		PrecioVenta: decimal.NewFromInt(200),
	}, []apiclient.BOMRow{{IDInsumo: "1", Cantidad: decimal.NewFromInt(1), Unidad: "kg"}})

	require.NoError(t, err, "la falla de receta no revierte el guardado")
	assert.Equal(t, 1, e.cuenta("createProduct"))
	assert.Equal(t, 1, e.cuenta("setBOM"))
	assert.Contains(t, e.out.String(), "Producto guardado, pero la receta no se pudo guardar")
	assert.Contains(t, e.out.String(), "Tarta de Fresa", "el producto aparece en la tabla recargada")
}

func TestSaveProduct_ExitosoGuardaProductoYReceta(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProducts))

	err := e.ctrl.SaveProduct(ctx, "1", apiclient.ProductoData{
		Nombre: "Pastel de Chocolate", Categoria: "Pasteles",
		PrecioVenta: decimal.NewFromInt(380),
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, e.cuenta("updateProduct"))
	assert.Equal(t, 1, e.cuenta("setBOM"))
	assert.Contains(t, e.out.String(), "[success] Producto guardado")
}

// El ajuste directo de stock de producto terminado va por
// updateProductStock y recarga la tabla del catálogo.
func TestAjusteDeStockDeProductoRecargaElCatalogo(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProducts))
	e.out.Reset()

	require.NoError(t, e.ctrl.AdjustProductStock(ctx, "1", decimal.NewFromInt(4)))

	assert.Contains(t, e.out.String(), "Stock actualizado: 4")
	assert.Equal(t, 1, e.cuenta("updateProductStock"))
	assert.Equal(t, 2, e.cuenta("getProducts"), "la tabla se recarga tras el ajuste")
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyecciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProyeccion_EntrarManualSiembraMetasEnCero(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProjections))

	require.NoError(t, e.ctrl.ToggleManual(ctx))

	st := e.ctrl.State()
	assert.True(t, st.ProyManual)
	require.Len(t, st.ProyItems, 5, "una meta por producto activo del catálogo")
	for _, it := range st.ProyItems {
		assert.True(t, it.Cantidad.IsZero())
	}
}

// Con todas las metas en cero el resumen se resuelve localmente, sin
// llamar al backend.
func TestProyeccion_MetasEnCeroNoLlamanAlBackend(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProjections))
	require.NoError(t, e.ctrl.ToggleManual(ctx))

	assert.Zero(t, e.cuenta("calculateProjectionDetails"))
	assert.True(t, e.ctrl.State().ProyResumen.IngresoEst.IsZero())
	assert.Empty(t, e.ctrl.State().ProyCompras)
}

func TestProyeccion_MetaPositivaRecalculaConElBackend(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProjections))
	require.NoError(t, e.ctrl.ToggleManual(ctx))

	require.NoError(t, e.ctrl.SetMeta(ctx, 0, decimal.NewFromInt(2)))

	assert.Equal(t, 1, e.cuenta("calculateProjectionDetails"))
	st := e.ctrl.State()
	assert.True(t, st.ProyResumen.IngresoEst.Equal(decimal.NewFromInt(700)),
		"dos pasteles de 350 proyectan 700 de ingreso")
	assert.NotEmpty(t, st.ProyCompras)
}

// Las cantidades manuales sobreviven el paseo por el modo histórico.
func TestProyeccion_CantidadesSePreservanAlAlternarModo(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProjections))
	require.NoError(t, e.ctrl.ToggleManual(ctx))
	require.NoError(t, e.ctrl.SetMeta(ctx, 0, decimal.NewFromInt(3)))

	require.NoError(t, e.ctrl.ToggleManual(ctx)) // a histórico
	assert.False(t, e.ctrl.State().ProyManual)

	require.NoError(t, e.ctrl.ToggleManual(ctx)) // de vuelta a manual
	st := e.ctrl.State()
	require.Len(t, st.ProyItems, 5, "no se vuelve a sembrar: las metas ya existen")
	assert.True(t, st.ProyItems[0].Cantidad.Equal(decimal.NewFromInt(3)),
		"la meta capturada debe seguir ahí")
}

func TestProyeccion_MetaNegativaRechazada(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewProjections))
	require.NoError(t, e.ctrl.ToggleManual(ctx))

	err := e.ctrl.SetMeta(ctx, 0, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas e informes
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_EntradaInicialUsaElMesActual(t *testing.T) {
	e := newEntorno(t)
	e.login(t)

	require.NoError(t, e.ctrl.Navigate(context.Background(), controller.ViewSales))

	r := e.ctrl.State().Rango
	hoy := time.Now()
	assert.Equal(t, hoy.Month(), r.Start.Month())
	assert.Equal(t, 1, r.Start.Day(), "el rango por defecto arranca el día 1 del mes")
}

func TestReports_ReconstruyeLosCuatroGraficos(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()

	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewReports))
	primero := e.ctrl.State().Charts.Get(controller.ChartVentas)
	require.NotNil(t, primero)
	assert.Equal(t, 4, e.ctrl.State().Charts.Len())

	// Volver a entrar reconstruye cada destino liberando el anterior.
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewReports))
	assert.True(t, primero.Closed())
	assert.Equal(t, 4, e.ctrl.State().Charts.Len())
	assert.Equal(t, 2, e.cuenta("getSalesReport"))
	assert.Equal(t, 2, e.cuenta("getProductSalesReport"))
}

// El selector de periodo de informes vuelve a traer ambos reportes con
// el periodo elegido; la entrada inicial usa el mes.
func TestReports_CambioDePeriodoVuelveATraerAmbosReportes(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewReports))
	require.Equal(t, pos.PeriodoMes, e.periodoVisto("getSalesReport"))

	require.NoError(t, e.ctrl.SetReportPeriodo(ctx, pos.PeriodoSemana))

	assert.Equal(t, pos.PeriodoSemana, e.ctrl.State().RepPeriodo)
	assert.Equal(t, pos.PeriodoSemana, e.periodoVisto("getSalesReport"))
	assert.Equal(t, pos.PeriodoSemana, e.periodoVisto("getProductSalesReport"))
	assert.Equal(t, 2, e.cuenta("getSalesReport"))
	assert.Equal(t, 2, e.cuenta("getProductSalesReport"))
}

func TestInventario_AjusteDeStockRecarga(t *testing.T) {
	e := newEntorno(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.ctrl.Navigate(ctx, controller.ViewInventory))
	e.out.Reset()

	require.NoError(t, e.ctrl.AdjustInsumoStock(ctx, "2", decimal.NewFromInt(20)))

	assert.Contains(t, e.out.String(), "Stock actualizado: 28")
	assert.Equal(t, 1, e.cuenta("updateStock"))
}
