package order

import (
	"context"
	"os"
	"testing"
	"time"

	"beerhall/internal/domain"
	"beerhall/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_lines, orders, customers, beers, brewers, locations RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

// seedCheckoutData inserts the location, brewer, beers and customer an order
// needs, returning the customer id and the two beers.
func seedCheckoutData(ctx context.Context, t *testing.T, pool *pgxpool.Pool) (int64, []domain.Beer) {
	t.Helper()
	if _, err := pool.Exec(ctx, `INSERT INTO locations (postal_code, name) VALUES ('8531', 'Bavikhove')`); err != nil {
		t.Fatalf("insert location: %v", err)
	}
	var brewerID int
	if err := pool.QueryRow(ctx, `INSERT INTO brewers (name) VALUES ('Bavik') RETURNING id`).Scan(&brewerID); err != nil {
		t.Fatalf("insert brewer: %v", err)
	}
	beers := make([]domain.Beer, 0, 2)
	for _, b := range []struct {
		name  string
		price string
	}{
		{"Bavik Pils", "1.02"},
		{"Wittekerke", "0.85"},
	} {
		var id int
		if err := pool.QueryRow(ctx, `
			INSERT INTO beers (brewer_id, name, price, alcohol_percent)
			VALUES ($1, $2, $3, 5.0)
			RETURNING id
		`, brewerID, b.name, b.price).Scan(&id); err != nil {
			t.Fatalf("insert beer: %v", err)
		}
		beers = append(beers, domain.Beer{ID: id, Name: b.name, Price: decimal.RequireFromString(b.price)})
	}
	var customerID int64
	if err := pool.QueryRow(ctx, `
		INSERT INTO customers (email, name, first_name, postal_code)
		VALUES ('jan@hogent.be', 'Pieters', 'Jan', '8531')
		RETURNING id
	`).Scan(&customerID); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	return customerID, beers
}

func TestPostgres_InsertAndListByCustomer(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)
	customerID, beers := seedCheckoutData(ctx, t, pool)

	cart := domain.NewCart()
	cart.AddLine(beers[0], 10)
	cart.AddLine(beers[1], 1)
	delivery := time.Now().AddDate(0, 0, 14)
	for delivery.Weekday() == time.Sunday {
		delivery = delivery.AddDate(0, 0, 1)
	}
	location := &domain.Location{PostalCode: "8531", Name: "Bavikhove"}
	o, err := domain.NewOrder(cart, &delivery, true, "Street 1", location, domain.DefaultDeliveryPolicy)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}

	repo := NewPostgres(pool, nil)
	orderID, err := repo.Insert(ctx, customerID, o)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if orderID == 0 {
		t.Fatal("expected non-zero order id")
	}

	placed, err := repo.ListByCustomer(ctx, customerID)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if len(placed) != 1 {
		t.Fatalf("expected 1 order, got %d", len(placed))
	}
	got := placed[0]
	if got.ID != orderID || got.Street != "Street 1" || !got.Giftwrapping {
		t.Fatalf("unexpected order %+v", got)
	}
	if got.Location.PostalCode != "8531" || got.Location.Name != "Bavikhove" {
		t.Fatalf("unexpected location %+v", got.Location)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Lines))
	}
	if got.Lines[0].UnitPrice.String() != "1.02" || got.Lines[0].Quantity != 10 {
		t.Fatalf("unexpected line %+v", got.Lines[0])
	}
}

func TestPostgres_InsertIsTransactional(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)
	customerID, beers := seedCheckoutData(ctx, t, pool)

	// a line referencing a missing beer makes the whole insert roll back
	cart := domain.NewCart()
	cart.AddLine(beers[0], 1)
	cart.AddLine(domain.Beer{ID: 9999, Name: "Ghost", Price: decimal.RequireFromString("1.00")}, 1)
	location := &domain.Location{PostalCode: "8531", Name: "Bavikhove"}
	o, err := domain.NewOrder(cart, nil, false, "Street 1", location, domain.DefaultDeliveryPolicy)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}

	repo := NewPostgres(pool, nil)
	if _, err := repo.Insert(ctx, customerID, o); err == nil {
		t.Fatal("expected insert to fail")
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, found %d orders", count)
	}
}
