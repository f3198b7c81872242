package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/employee"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/validation"
)

// EmployeeHandler maneja el CRUD de empleados (rutas protegidas).
type EmployeeHandler struct {
	uc *employee.UseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *employee.UseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// parseFields recorta y valida el cuerpo de create/update. El primer campo
// inválido corta con su mensaje específico; el orden es parte del contrato.
func parseFields(c *fiber.Ctx) (employee.Fields, string) {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return employee.Fields{}, "Invalid request body"
	}
	f := employee.Fields{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Department:  strings.TrimSpace(in.Department),
		Designation: strings.TrimSpace(in.Designation),
	}
	if !validation.Name(f.Name) {
		return f, "Invalid Name"
	}
	if !validation.Email(f.Email) {
		return f, "Invalid Email"
	}
	if !validation.TextField(f.Department) {
		return f, "Invalid Department"
	}
	if !validation.TextField(f.Designation) {
		return f, "Invalid Role"
	}
	salary, ok := validation.Salary(in.Salary)
	if !ok {
		return f, "Invalid Salary"
	}
	f.Salary = salary
	return f, ""
}

// Create crea un empleado bajo el usuario autenticado. 201 en éxito; 400 por
// validación o email duplicado bajo el mismo dueño.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	f, msg := parseFields(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}
	if err := h.uc.Create(userID, f); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Email already exists"})
		}
		log.Error().Err(err).Msg("create employee")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Employee Added"})
}

// List devuelve los empleados del usuario autenticado como arreglo JSON.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	out, err := h.uc.List(userID)
	if err != nil {
		log.Error().Err(err).Msg("list employees")
		return internalError(c)
	}
	return c.JSON(out)
}

// Update reemplaza todos los campos del empleado :id. 403 uniforme si el
// documento no coincide, sin distinguir inexistente de ajeno.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	f, msg := parseFields(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}
	if err := h.uc.Update(userID, id, f); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Email already exists"})
		case errors.Is(err, domain.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Not authorized"})
		default:
			log.Error().Err(err).Msg("update employee")
			return internalError(c)
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Updated"})
}

// Delete elimina el empleado :id del usuario autenticado. Misma política de
// 403 uniforme que Update.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	if err := h.uc.Delete(userID, id); err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Not authorized"})
		}
		log.Error().Err(err).Msg("delete employee")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Deleted"})
}
