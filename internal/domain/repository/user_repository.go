package repository

import "github.com/jhoicas/empleados-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna su ID generado por el store.
	// Devuelve domain.ErrEmailAlreadyExists si el índice único de email lo rechaza.
	Create(user *entity.User) error
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(email string) (*entity.User, error)
	// FindByID devuelve nil, nil si no existe o el ID es malformado.
	FindByID(id string) (*entity.User, error)
}
