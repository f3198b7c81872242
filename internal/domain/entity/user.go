package entity

import "time"

// User representa una cuenta del sistema. Cada User es dueño de sus Employee
// (aislamiento multi-tenant vía Employee.CreatedBy).
type User struct {
	ID           string
	Name         string
	Email        string // único en toda la colección
	PasswordHash string // hash bcrypt, nunca el password plano después de persistir
	CreatedAt    time.Time
}
