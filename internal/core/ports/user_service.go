package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

// UpdateUserInput mutates profile fields and, when set, the role.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Role      domain.Role
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, newPassword string) error
	Delete(ctx context.Context, id string) error
}
