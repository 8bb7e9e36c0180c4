// Package checkout is the cart-to-order transition: validate the shipping
// input against the session cart, persist the resulting order under its
// customer and only then clear the cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"beerhall/internal/cartstore"
	"beerhall/internal/domain"
)

type customerRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type orderRepo interface {
	Insert(ctx context.Context, customerID int64, o *domain.Order) (int64, error)
}

type locationRepo interface {
	GetByPostalCode(ctx context.Context, postalCode string) (*domain.Location, error)
}

type Service struct {
	carts     *cartstore.Store
	customers customerRepo
	orders    orderRepo
	locations locationRepo
	policy    domain.DeliveryPolicy
	logger    *log.Logger
}

func New(carts *cartstore.Store, customers customerRepo, orders orderRepo, locations locationRepo, policy domain.DeliveryPolicy, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		carts:     carts,
		customers: customers,
		orders:    orders,
		locations: locations,
		policy:    policy,
		logger:    logger,
	}
}

// Input carries the shipping form fields plus the customer placing the order.
type Input struct {
	Email        string
	DeliveryDate *time.Time
	Giftwrapping bool
	Street       string
	PostalCode   string
}

// Result is the committed order and its database identity.
type Result struct {
	OrderID int64
	Order   *domain.Order
}

// PlaceOrder runs the checkout transition. Validation failures come back as
// *domain.ValidationError; an unknown customer as domain.ErrNotFound. The
// session cart is cleared only after the order was persisted, so a failed
// commit leaves the customer's selection intact for a retry.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, in Input) (*Result, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	location, err := s.resolveLocation(ctx, in.PostalCode)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(in.Email)))
	if err != nil {
		return nil, err
	}

	order, err := customer.PlaceOrder(cart, in.DeliveryDate, in.Giftwrapping, in.Street, location, s.policy)
	if err != nil {
		return nil, err
	}

	orderID, err := s.orders.Insert(ctx, customer.ID, order)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	cart.Clear()
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		// The order is committed; a stale blob only means the next page
		// view shows an already-ordered cart.
		s.logger.Printf("checkout: order id=%d placed but cart blob not cleared: %v", orderID, err)
	}

	s.logger.Printf("checkout: order id=%d customer_id=%d lines=%d total=%s", orderID, customer.ID, len(order.Lines()), order.Total())
	return &Result{OrderID: orderID, Order: order}, nil
}

// resolveLocation maps a postal code to a location. A blank or unknown code
// yields a nil location, which the order constructor rejects with its own
// message.
func (s *Service) resolveLocation(ctx context.Context, postalCode string) (*domain.Location, error) {
	code := strings.TrimSpace(postalCode)
	if code == "" {
		return nil, nil
	}
	location, err := s.locations.GetByPostalCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve location %s: %w", code, err)
	}
	return location, nil
}
