package beer

import (
	"context"

	"beerhall/internal/domain"
)

// Repository is the product catalog capability: current beer data by id, or
// domain.ErrNotFound when the id does not resolve.
type Repository interface {
	GetAll(ctx context.Context) ([]domain.Beer, error)
	GetByID(ctx context.Context, id int) (*domain.Beer, error)
}
