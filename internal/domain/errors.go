package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrTooManyAttempts     = errors.New("demasiados intentos")
	ErrLicenseInactive     = errors.New("licencia inactiva")
	ErrLicenseExpired      = errors.New("licencia vencida")
	ErrDeviceLimitExceeded = errors.New("límite de dispositivos alcanzado")
)

// ValidationError entrada inválida con el mensaje que ve el cliente.
// errors.Is(err, ErrInvalidInput) sigue siendo verdadero.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Unwrap permite comparar con ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
