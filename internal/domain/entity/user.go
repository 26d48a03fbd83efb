package entity

import "time"

// User usuario autenticado. PasswordHash solo existe con el emisor local;
// con el proveedor externo el registro se crea al primer onboarding.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
