package ports

import (
	"context"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
)

// UserRepository defines persistence for dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CustomerRepository reads the customers the invoice form can select from.
type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
}
