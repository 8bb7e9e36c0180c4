package customer

import (
	"context"

	"beerhall/internal/domain"
)

type CreateCustomerInput struct {
	Email      string
	Name       string
	FirstName  string
	Street     string
	PostalCode *string
}

// Repository is the customer directory: lookup by email, registration.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
}
