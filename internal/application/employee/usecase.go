package employee

import (
	"time"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

// Fields campos ya validados y recortados de un empleado (sin ID ni dueño).
type Fields struct {
	Name        string
	Email       string
	Department  string
	Designation string
	Salary      int
}

// UseCase casos de uso CRUD de empleados, siempre acotados al dueño.
// El ownerID proviene del subject del token, nunca del cliente.
type UseCase struct {
	repo repository.EmployeeRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.EmployeeRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create persiste un empleado nuevo bajo ownerID. Devuelve
// domain.ErrEmailAlreadyExists si el dueño ya tiene un empleado con ese email.
func (uc *UseCase) Create(ownerID string, f Fields) error {
	// Pre-check; el índice único (email, createdBy) cierra la carrera en el store.
	existing, err := uc.repo.FindByEmailAndOwner(f.Email, ownerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	emp := &entity.Employee{
		Name:        f.Name,
		Email:       f.Email,
		Department:  f.Department,
		Designation: f.Designation,
		Salary:      f.Salary,
		CreatedBy:   ownerID,
		CreatedAt:   time.Now(),
	}
	return uc.repo.Create(emp)
}

// List devuelve todos los empleados del dueño, con IDs en forma de string.
func (uc *UseCase) List(ownerID string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.EmployeeResponse{
			ID:          e.ID,
			Name:        e.Name,
			Email:       e.Email,
			Department:  e.Department,
			Designation: e.Designation,
			Salary:      e.Salary,
			CreatedBy:   e.CreatedBy,
		})
	}
	return items, nil
}

// Update reemplaza todos los campos del empleado (id, ownerID).
// Devuelve domain.ErrEmailAlreadyExists si otro empleado del mismo dueño ya
// usa el email, y domain.ErrNotOwner si ningún documento coincidió — sin
// distinguir "no existe" de "no es tuyo".
func (uc *UseCase) Update(ownerID, id string, f Fields) error {
	dup, err := uc.repo.FindByEmailAndOwner(f.Email, ownerID)
	if err != nil {
		return err
	}
	if dup != nil && dup.ID != id {
		return domain.ErrEmailAlreadyExists
	}
	matched, err := uc.repo.UpdateOwned(&entity.Employee{
		ID:          id,
		Name:        f.Name,
		Email:       f.Email,
		Department:  f.Department,
		Designation: f.Designation,
		Salary:      f.Salary,
		CreatedBy:   ownerID,
	})
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotOwner
	}
	return nil
}

// Delete elimina el empleado (id, ownerID). Misma política de no revelación
// que Update: cero documentos borrados -> domain.ErrNotOwner.
func (uc *UseCase) Delete(ownerID, id string) error {
	deleted, err := uc.repo.DeleteOwned(id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotOwner
	}
	return nil
}
