package dto

// EmployeeRequest entrada para crear/actualizar un empleado (reemplazo completo,
// sin patch parcial). Salary es any porque el cliente puede enviar número o
// string numérico; se valida con validation.Salary antes de tocar el store.
type EmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Salary      any    `json:"salary"`
}

// EmployeeResponse salida de un empleado; el ID va como string bajo _id,
// el formato que consume el frontend original.
type EmployeeResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Salary      int    `json:"salary"`
	CreatedBy   string `json:"createdBy"`
}
