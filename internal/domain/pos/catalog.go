package pos

import (
	"strings"

	"github.com/jhoicas/pasteleria-pos/internal/domain/entity"
)

// FilterByName filtra productos por subcadena del nombre, sin distinguir
// mayúsculas. Filtro vacío devuelve todo.
func FilterByName(productos []entity.Producto, filtro string) []entity.Producto {
	if filtro == "" {
		return productos
	}
	filtro = strings.ToLower(filtro)
	out := make([]entity.Producto, 0, len(productos))
	for _, p := range productos {
		if strings.Contains(strings.ToLower(p.Nombre), filtro) {
			out = append(out, p)
		}
	}
	return out
}
