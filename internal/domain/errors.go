package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrZapatoNoEncontrado  = errors.New("zapato no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrUsernameRegistrado  = errors.New("el usuario ya está registrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrCredenciales        = errors.New("usuario o contraseña incorrectos")
	ErrNoAutorizado        = errors.New("no autorizado")
	ErrProhibido           = errors.New("acceso denegado")
	ErrServicioEtiquetas   = errors.New("servicio de etiquetas no disponible")
)

// ValidationError entrada inválida con mensaje apto para el cliente.
// Los handlers lo mapean a 400 devolviendo Msg tal cual.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is permite tratar cualquier ValidationError como ErrEntradaInvalida.
func (e *ValidationError) Is(target error) bool { return target == ErrEntradaInvalida }

// Validacion construye un ValidationError.
func Validacion(msg string) error { return &ValidationError{Msg: msg} }
