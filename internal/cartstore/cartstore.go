// Package cartstore bridges the in-memory cart and the per-session blob
// store. Only (productId, quantity) pairs are persisted; prices and names
// are re-resolved against the catalog on every load, since session data is
// client-influenced and catalog prices move.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"beerhall/internal/domain"
	"beerhall/internal/session"
)

const keyPrefix = "cart:"

type catalog interface {
	GetByID(ctx context.Context, id int) (*domain.Beer, error)
}

// persistedLine is the on-blob shape of a cart line.
type persistedLine struct {
	Quantity  int `json:"quantity"`
	ProductID int `json:"productId"`
}

// Store loads and saves session carts.
type Store struct {
	sessions session.Store
	beers    catalog
	logger   *log.Logger
}

func New(sessions session.Store, beers catalog, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{sessions: sessions, beers: beers, logger: logger}
}

// Load returns the session's cart, an empty cart when no blob exists. Each
// persisted line is rehydrated by looking its product up in the catalog; a
// line whose product id no longer resolves is dropped.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart := domain.NewCart()

	blob, ok, err := s.sessions.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return cart, nil
	}

	var lines []persistedLine
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		// A corrupt blob is treated like an absent one rather than
		// locking the session out of its cart.
		s.logger.Printf("cartstore: session=%s corrupt blob discarded: %v", sessionID, err)
		return cart, nil
	}

	for _, l := range lines {
		beer, err := s.beers.GetByID(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Printf("cartstore: session=%s dropping line product_id=%d no longer in catalog", sessionID, l.ProductID)
				continue
			}
			return nil, fmt.Errorf("rehydrate product %d: %w", l.ProductID, err)
		}
		cart.AddLine(*beer, l.Quantity)
	}
	return cart, nil
}

// Save overwrites the session's blob with the cart's (productId, quantity)
// pairs.
func (s *Store) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	lines := make([]persistedLine, 0, cart.NumberOfItems())
	for _, l := range cart.Lines() {
		lines = append(lines, persistedLine{Quantity: l.Quantity, ProductID: l.Product.ID})
	}
	blob, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.sessions.Set(ctx, keyPrefix+sessionID, string(blob)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear removes the session's cart blob.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, keyPrefix+sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
