package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"beerhall/internal/cartstore"
	"beerhall/internal/domain"
	"beerhall/internal/session"

	"github.com/shopspring/decimal"
)

type stubBeerRepo struct {
	beers map[int]domain.Beer
}

func (s *stubBeerRepo) GetByID(_ context.Context, id int) (*domain.Beer, error) {
	beer, ok := s.beers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &beer, nil
}

type stubCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerRepo) GetByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

type stubOrderRepo struct {
	insertErr   error
	inserted    *domain.Order
	insertedFor int64
	insertCalls int
	nextID      int64
}

func (s *stubOrderRepo) Insert(_ context.Context, customerID int64, o *domain.Order) (int64, error) {
	s.insertCalls++
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.inserted = o
	s.insertedFor = customerID
	return s.nextID, nil
}

type stubLocationRepo struct {
	locations map[string]domain.Location
}

func (s *stubLocationRepo) GetByPostalCode(_ context.Context, code string) (*domain.Location, error) {
	l, ok := s.locations[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

type fixture struct {
	svc      *Service
	sessions session.Store
	orders   *stubOrderRepo
	beers    *stubBeerRepo
}

func newFixture(t *testing.T, customer *domain.Customer, customerErr error) *fixture {
	t.Helper()
	beers := &stubBeerRepo{beers: map[int]domain.Beer{
		1: {ID: 1, Name: "Bavik Pils", Price: decimal.RequireFromString("1.02")},
		2: {ID: 2, Name: "Wittekerke", Price: decimal.RequireFromString("0.85")},
	}}
	sessions := session.NewMemory()
	carts := cartstore.New(sessions, beers, nil)
	orders := &stubOrderRepo{nextID: 7}
	locations := &stubLocationRepo{locations: map[string]domain.Location{
		"8531": {PostalCode: "8531", Name: "Bavikhove"},
	}}
	svc := New(carts, &stubCustomerRepo{customer: customer, err: customerErr}, orders, locations, domain.DefaultDeliveryPolicy, nil)
	return &fixture{svc: svc, sessions: sessions, orders: orders, beers: beers}
}

func (f *fixture) seedCart(t *testing.T, sessionID string) {
	t.Helper()
	if err := f.sessions.Set(context.Background(), "cart:"+sessionID, `[{"quantity":10,"productId":1},{"quantity":1,"productId":2}]`); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func (f *fixture) cartBlob(t *testing.T, sessionID string) (string, bool) {
	t.Helper()
	blob, ok, err := f.sessions.Get(context.Background(), "cart:"+sessionID)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	return blob, ok
}

func validInput() Input {
	delivery := time.Now().AddDate(0, 0, 14)
	for delivery.Weekday() == time.Sunday {
		delivery = delivery.AddDate(0, 0, 1)
	}
	return Input{
		Email:        "jan@hogent.be",
		DeliveryDate: &delivery,
		Giftwrapping: true,
		Street:       "Street 1",
		PostalCode:   "8531",
	}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: 3, Email: "jan@hogent.be", Name: "Pieters", FirstName: "Jan"}
}

func TestPlaceOrder_Success(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)
	f.seedCart(t, "s1")

	res, err := f.svc.PlaceOrder(context.Background(), "s1", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OrderID != 7 {
		t.Fatalf("expected order id 7, got %d", res.OrderID)
	}
	if f.orders.insertedFor != 3 {
		t.Fatalf("expected insert for customer 3, got %d", f.orders.insertedFor)
	}
	if len(f.orders.inserted.Lines()) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(f.orders.inserted.Lines()))
	}

	blob, ok := f.cartBlob(t, "s1")
	if !ok || blob != "[]" {
		t.Fatalf("expected cleared cart blob, got ok=%v blob=%s", ok, blob)
	}
}

func TestPlaceOrder_CapturedPriceSurvivesCatalogChange(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)
	f.seedCart(t, "s1")

	res, err := f.svc.PlaceOrder(context.Background(), "s1", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// raise the catalog price after checkout
	b := f.beers.beers[1]
	b.Price = decimal.RequireFromString("9.99")
	f.beers.beers[1] = b

	want := decimal.RequireFromString("1.02").Mul(decimal.NewFromInt(10)).
		Add(decimal.RequireFromString("0.85"))
	if !res.Order.Total().Equal(want) {
		t.Fatalf("expected captured total %s, got %s", want, res.Order.Total())
	}
}

func TestPlaceOrder_EmptyCart_Rejected(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)

	_, err := f.svc.PlaceOrder(context.Background(), "s1", validInput())
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "An order requires a non empty cart" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if f.orders.insertCalls != 0 {
		t.Fatalf("expected no insert, got %d", f.orders.insertCalls)
	}
}

func TestPlaceOrder_BlankStreet_Rejected(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)
	f.seedCart(t, "s1")

	in := validInput()
	in.Street = "   "
	_, err := f.svc.PlaceOrder(context.Background(), "s1", in)
	if !domain.IsValidation(err) || err.Error() != "Street is required" {
		t.Fatalf("expected street validation, got %v", err)
	}
}

func TestPlaceOrder_UnknownPostalCode_Rejected(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)
	f.seedCart(t, "s1")

	in := validInput()
	in.PostalCode = "0000"
	_, err := f.svc.PlaceOrder(context.Background(), "s1", in)
	if !domain.IsValidation(err) || err.Error() != "Location is required" {
		t.Fatalf("expected location validation, got %v", err)
	}

	in.PostalCode = ""
	_, err = f.svc.PlaceOrder(context.Background(), "s1", in)
	if !domain.IsValidation(err) || err.Error() != "Location is required" {
		t.Fatalf("expected location validation, got %v", err)
	}
}

func TestPlaceOrder_UnknownCustomer_NotFound(t *testing.T) {
	f := newFixture(t, nil, domain.ErrNotFound)
	f.seedCart(t, "s1")

	_, err := f.svc.PlaceOrder(context.Background(), "s1", validInput())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlaceOrder_PersistenceFailure_KeepsCart(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)
	f.seedCart(t, "s1")
	f.orders.insertErr = errors.New("db down")

	_, err := f.svc.PlaceOrder(context.Background(), "s1", validInput())
	if err == nil || domain.IsValidation(err) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	blob, ok := f.cartBlob(t, "s1")
	if !ok || blob == "[]" {
		t.Fatalf("expected cart kept for retry, got ok=%v blob=%s", ok, blob)
	}

	// retry after the store recovers succeeds with the same selection
	f.orders.insertErr = nil
	res, err := f.svc.PlaceOrder(context.Background(), "s1", validInput())
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(res.Order.Lines()) != 2 {
		t.Fatalf("expected retried order with 2 lines, got %d", len(res.Order.Lines()))
	}
}

func TestPlaceOrder_ValidationLeavesCartIntact(t *testing.T) {
	f := newFixture(t, testCustomer(), nil)
	f.seedCart(t, "s1")

	in := validInput()
	in.Street = ""
	if _, err := f.svc.PlaceOrder(context.Background(), "s1", in); err == nil {
		t.Fatal("expected error")
	}

	blob, ok := f.cartBlob(t, "s1")
	if !ok || blob == "[]" {
		t.Fatalf("expected cart unchanged, got ok=%v blob=%s", ok, blob)
	}
}
