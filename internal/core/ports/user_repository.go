package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

// UserRepository persists staff accounts. Email uniqueness is enforced by
// the storage layer (unique index), not by a check-then-insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error

	// ClaimAdminBootstrap atomically claims the one-time bootstrap marker.
	// Exactly one caller in the lifetime of the store receives true; that
	// registration is promoted to admin.
	ClaimAdminBootstrap(ctx context.Context) (bool, error)
}
