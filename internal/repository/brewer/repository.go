package brewer

import (
	"context"

	"beerhall/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Brewer, error)
	GetByID(ctx context.Context, id int) (*domain.Brewer, error)
}
