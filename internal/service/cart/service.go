// Package cart orchestrates the session cart: every operation loads the
// cart from the session blob, mutates it in memory and writes it back.
package cart

import (
	"context"
	"errors"
	"fmt"

	"beerhall/internal/cartstore"
	"beerhall/internal/domain"
)

type beerRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Beer, error)
}

type Service struct {
	carts *cartstore.Store
	beers beerRepo
}

func New(carts *cartstore.Store, beers beerRepo) *Service {
	return &Service{carts: carts, beers: beers}
}

// View returns the session's current cart.
func (s *Service) View(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.carts.Load(ctx, sessionID)
}

// Add puts quantity of the given beer in the cart, merging with an existing
// line. Unknown beer ids surface as domain.ErrNotFound; the aggregate itself
// does not validate quantity, so the sign check lives here.
func (s *Service) Add(ctx context.Context, sessionID string, beerID, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Message: "quantity must be positive"}
	}
	beer, err := s.beers.GetByID(ctx, beerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolve beer %d: %w", beerID, err)
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.AddLine(*beer, quantity)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove takes the beer's line out of the cart. Removing a beer that is not
// in the cart leaves the cart as it was.
func (s *Service) Remove(ctx context.Context, sessionID string, beerID int) (*domain.Cart, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.RemoveLine(beerID)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.carts.Clear(ctx, sessionID)
}
