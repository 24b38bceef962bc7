package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
)

// El umbral es inclusivo: stock igual al mínimo ya cuenta como bajo.
func TestStockBajo_UmbralInclusivo(t *testing.T) {
	casos := []struct {
		nombre  string
		actual  float64
		minimo  float64
		esperar bool
	}{
		{"por debajo del mínimo", 8, 10, true},
		{"muy por debajo del mínimo", 2, 12, true},
		{"exactamente en el mínimo", 10, 10, true},
		{"por encima del mínimo", 50, 10, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := pos.StockBajo(decimal.NewFromFloat(c.actual), decimal.NewFromFloat(c.minimo))
			assert.Equal(t, c.esperar, got)
		})
	}
}

func TestEstadoStock_Etiquetas(t *testing.T) {
	assert.Equal(t, "Bajo Stock", pos.EstadoStock(decimal.NewFromInt(8), decimal.NewFromInt(10)))
	assert.Equal(t, "OK", pos.EstadoStock(decimal.NewFromInt(50), decimal.NewFromInt(10)))
}
