package pos

import "time"

// DateRange rango de fechas inclusivo para el filtro de ventas.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Periodos rápidos del filtro de ventas.
const (
	PeriodoHoy    = "today"
	PeriodoSemana = "week"
	PeriodoMes    = "month"
)

// RangeFor calcula el rango del periodo rápido relativo a now (hora local).
//   - today:  medianoche a 23:59:59.999 del día actual
//   - week:   lunes como día 1 (numeración ISO, domingo = 7) hasta fin del día
//   - month:  día 1 hasta el último día calendario del mes
func RangeFor(periodo string, now time.Time) DateRange {
	switch periodo {
	case PeriodoSemana:
		dia := int(now.Weekday())
		if dia == 0 {
			dia = 7 // domingo
		}
		start := startOfDay(now.AddDate(0, 0, -(dia - 1)))
		return DateRange{Start: start, End: endOfDay(now)}
	case PeriodoMes:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		// Día 0 del mes siguiente = último día calendario de este mes.
		end := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, int(999*time.Millisecond), now.Location())
		return DateRange{Start: start, End: end}
	default: // hoy
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	}
}

// DefaultRange rango por defecto cuando el filtro está vacío: mes actual.
func DefaultRange(now time.Time) DateRange {
	return RangeFor(PeriodoMes, now)
}

// FechaInicio formatea el inicio del rango como lo espera el backend.
func (r DateRange) FechaInicio() string {
	return r.Start.Format("2006-01-02") + " 00:00:00"
}

// FechaFin formatea el fin del rango como lo espera el backend.
func (r DateRange) FechaFin() string {
	return r.End.Format("2006-01-02") + " 23:59:59"
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
