package apiclient_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pasteleria-pos/internal/apiclient"
	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/mockbackend"
	"github.com/jhoicas/pasteleria-pos/internal/transport"
)

type tokenStub string

func (t tokenStub) Token() string { return string(t) }

// newClient arma el cliente tipado sobre el backend de demostración,
// pasando por el transporte real (payload y sobre completos).
func newClient() *apiclient.Client {
	backend := mockbackend.New(mockbackend.Config{
		JWTSecret: "test-secret", JWTIssuer: "test", JWTExpMins: 60,
	})
	return apiclient.New(transport.NewMockTransport(backend.Handle, tokenStub("tok"), 0))
}

func TestLogin_DecodificaTokenYPerfil(t *testing.T) {
	c := newClient()

	resp, err := c.Login(context.Background(), "demo@pasteleria.mx", "123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Usuario Demo", resp.User.Nombre)
}

func TestLogin_ErrorDelBackendSePropaga(t *testing.T) {
	c := newClient()

	_, err := c.Login(context.Background(), "demo@pasteleria.mx", "otra")
	require.Error(t, err)
	assert.True(t, transport.IsBackendError(err))
	assert.EqualError(t, err, "Credenciales inválidas (Use pass: 123)")
}

func TestGetProducts_DecodificaCatalogo(t *testing.T) {
	c := newClient()

	productos, err := c.GetProducts(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, productos, 5)
	assert.Equal(t, "Pastel de Chocolate", productos[0].Nombre)
	assert.True(t, productos[0].PrecioVenta.Equal(decimal.NewFromInt(350)))
}

func TestGetProducts_RespuestaMalformadaEsError(t *testing.T) {
	// Caso: el backend responde success pero con un tipo inesperado; el
	// decode falla en la frontera y no llega al llamador como catálogo.
	malformado := func(action string, params map[string]any) map[string]any {
		return map[string]any{"success": true, "products": "no-es-una-lista"}
	}
	c := apiclient.New(transport.NewMockTransport(malformado, tokenStub("tok"), 0))

	_, err := c.GetProducts(context.Background(), true)
	require.Error(t, err)
	assert.False(t, transport.IsBackendError(err))
}

func TestCreateSale_DevuelveIDYMensaje(t *testing.T) {
	c := newClient()

	resp, err := c.CreateSale(context.Background(), apiclient.CreateSaleRequest{
		Items: []apiclient.SaleItem{
			{IDProducto: "1", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(350)},
		},
		MetodoPago: "Efectivo",
		Descuento:  decimal.Zero,
		Cajero:     "Usuario Demo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.IDVenta)
	assert.Equal(t, "Venta registrada con éxito", resp.Message)
}

func TestGetSaleDetail_DecodificaRenglones(t *testing.T) {
	c := newClient()

	detalle, err := c.GetSaleDetail(context.Background(), "V002")
	require.NoError(t, err)
	assert.Len(t, detalle.Items, 3)
	assert.True(t, detalle.Total.Equal(decimal.NewFromInt(1200)))
}

func TestUpdateStock_DevuelveStockNuevo(t *testing.T) {
	c := newClient()

	nuevo, err := c.UpdateStock(context.Background(), "2", decimal.NewFromInt(-3))
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(decimal.NewFromInt(5)))
}

func TestUpdateProductStock_DevuelveStockNuevo(t *testing.T) {
	c := newClient()

	antes, err := c.GetProducts(context.Background(), false)
	require.NoError(t, err)
	base := antes[0].Stock

	nuevo, err := c.UpdateProductStock(context.Background(), antes[0].ID, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(base.Add(decimal.NewFromInt(4))))
}

func TestGetSalesReport_DecodificaAgregados(t *testing.T) {
	c := newClient()

	reporte, err := c.GetSalesReport(context.Background(), "month")
	require.NoError(t, err)
	assert.True(t, reporte.VentasPorDia["2023-10-25"].Total.Equal(decimal.NewFromInt(1650)))
	assert.True(t, reporte.VentasPorMetodo["tarjeta"].Total.Equal(decimal.NewFromInt(1200)))
}

func TestCalculateProjectionDetails_RoundTrip(t *testing.T) {
	c := newClient()

	proy, err := c.CalculateProjectionDetails(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, proy.Summary.IngresoEst.IsZero(), "sin metas no hay ingreso estimado")
	assert.Empty(t, proy.ShoppingList)
}
