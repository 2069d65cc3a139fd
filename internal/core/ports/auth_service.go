package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

// RegisterInput carries a registration request. Role is not an input: the
// first-ever account becomes admin, every later one gets the default role.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
