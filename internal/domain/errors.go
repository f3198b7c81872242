package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotOwner           = errors.New("el recurso no pertenece al usuario")
)
