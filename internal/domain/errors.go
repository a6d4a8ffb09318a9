package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	// ErrInvalidCredentials no revela si falló el email o la contraseña.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrProductReferenced indica que el producto tiene movimientos asociados (violación de FK).
	ErrProductReferenced = errors.New("el producto tiene movimientos asociados")
	ErrSessionExpired    = errors.New("sesión expirada o inexistente")
)
