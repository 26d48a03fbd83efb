package repository

import (
	"context"

	"github.com/jhoicas/Axioma-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// EnsureExists registra el ID emitido por el proveedor externo si aún no existe.
	EnsureExists(ctx context.Context, id string) error
}
