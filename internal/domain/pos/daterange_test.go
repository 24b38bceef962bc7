package pos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pasteleria-pos/internal/domain/pos"
)

// Miércoles 25 de octubre de 2023, media mañana.
var miercoles = time.Date(2023, 10, 25, 10, 30, 0, 0, time.Local)

func TestRangeFor_Hoy(t *testing.T) {
	r := pos.RangeFor(pos.PeriodoHoy, miercoles)

	assert.Equal(t, "2023-10-25 00:00:00", r.FechaInicio())
	assert.Equal(t, "2023-10-25 23:59:59", r.FechaFin())
}

// La semana inicia en lunes; el domingo cuenta como día 7, no como 0.
func TestRangeFor_SemanaIniciaEnLunes(t *testing.T) {
	r := pos.RangeFor(pos.PeriodoSemana, miercoles)
	assert.Equal(t, "2023-10-23 00:00:00", r.FechaInicio(), "el lunes de esa semana es el 23")
	assert.Equal(t, "2023-10-25 23:59:59", r.FechaFin())

	domingo := time.Date(2023, 10, 29, 12, 0, 0, 0, time.Local)
	r = pos.RangeFor(pos.PeriodoSemana, domingo)
	assert.Equal(t, "2023-10-23 00:00:00", r.FechaInicio(),
		"en domingo la semana sigue anclada al lunes anterior, no al siguiente")
}

func TestRangeFor_MesCalendarioCompleto(t *testing.T) {
	r := pos.RangeFor(pos.PeriodoMes, miercoles)
	assert.Equal(t, "2023-10-01 00:00:00", r.FechaInicio())
	assert.Equal(t, "2023-10-31 23:59:59", r.FechaFin())

	// Febrero no bisiesto termina el 28.
	feb := time.Date(2023, 2, 10, 9, 0, 0, 0, time.Local)
	r = pos.RangeFor(pos.PeriodoMes, feb)
	assert.Equal(t, "2023-02-28 23:59:59", r.FechaFin())
}

func TestDefaultRange_EsMesActual(t *testing.T) {
	assert.Equal(t, pos.RangeFor(pos.PeriodoMes, miercoles), pos.DefaultRange(miercoles))
}

func TestRangeFor_PeriodoDesconocidoCaeEnHoy(t *testing.T) {
	r := pos.RangeFor("trimestre", miercoles)
	assert.Equal(t, pos.RangeFor(pos.PeriodoHoy, miercoles), r)
}
