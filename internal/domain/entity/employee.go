package entity

import "time"

// Employee registro de empleado, siempre asociado al usuario que lo creó.
// Invariante: (Email, CreatedBy) es único; usuarios distintos pueden repetir email.
type Employee struct {
	ID          string
	Name        string
	Email       string
	Department  string
	Designation string
	Salary      int // entero positivo, sin coerción
	CreatedBy   string
	CreatedAt   time.Time
}
