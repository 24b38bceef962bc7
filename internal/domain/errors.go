package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrCarritoVacio     = errors.New("el carrito está vacío")
	ErrCantidadInvalida = errors.New("cantidad inválida")
	ErrCamposRequeridos = errors.New("por favor completa los campos obligatorios")
	ErrSinSesion        = errors.New("no hay una sesión activa")
	ErrNotFound         = errors.New("recurso no encontrado")
)

// ErrConexion es el mensaje fijo que ve el usuario ante fallas de red;
// el backend no expone detalle útil en ese caso.
var ErrConexion = errors.New("Error de conexión con el servidor. Verifica tu internet y la URL del script.")
