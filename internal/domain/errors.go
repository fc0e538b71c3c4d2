package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// DuplicateKeyError señala una violación de unicidad indicando el campo
// de dominio afectado (username, email, orderId) para que el caller pueda
// construir un mensaje preciso en lugar de un fallo genérico.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return "clave duplicada: " + e.Field
}

// Is permite detectar el conflicto con errors.Is(err, ErrDuplicate)
// sin perder el campo violado.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicate
}

// NewDuplicateKey construye el error de unicidad para un campo.
func NewDuplicateKey(field string) error {
	return &DuplicateKeyError{Field: field}
}
