package repository

import "github.com/jhoicas/empleados-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Todas las operaciones de escritura están acotadas al dueño (CreatedBy).
type EmployeeRepository interface {
	// Create persiste el empleado y asigna su ID. Devuelve domain.ErrEmailAlreadyExists
	// si el índice único (email, createdBy) lo rechaza.
	Create(emp *entity.Employee) error
	// FindByEmailAndOwner devuelve nil, nil si no existe.
	FindByEmailAndOwner(email, ownerID string) (*entity.Employee, error)
	// ListByOwner devuelve todos los empleados con CreatedBy == ownerID.
	ListByOwner(ownerID string) ([]*entity.Employee, error)
	// UpdateOwned reemplaza todos los campos del documento (emp.ID, emp.CreatedBy).
	// matched = false si ningún documento coincidió (ID ajeno, inexistente o malformado).
	UpdateOwned(emp *entity.Employee) (matched bool, err error)
	// DeleteOwned elimina el documento (id, ownerID). deleted = false si nada coincidió.
	DeleteOwned(id, ownerID string) (deleted bool, err error)
}
