package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type locationSeed struct {
	PostalCode string
	Name       string
}

type brewerSeed struct {
	Name        string
	Description string
	PostalCode  string
}

type beerSeed struct {
	Brewer         string
	Name           string
	Description    string
	Price          string
	AlcoholPercent string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	locations := []locationSeed{
		{PostalCode: "8531", Name: "Bavikhove"},
		{PostalCode: "8800", Name: "Roeselare"},
		{PostalCode: "2870", Name: "Puurs"},
	}
	for _, l := range locations {
		if err := upsertLocation(ctx, pool, l); err != nil {
			return fmt.Errorf("upsert location %s: %w", l.PostalCode, err)
		}
	}

	brewers := []brewerSeed{
		{Name: "Bavik", Description: "Family brewery in Bavikhove", PostalCode: "8531"},
		{Name: "Rodenbach", Description: "Flemish red-brown ales since 1821", PostalCode: "8800"},
		{Name: "Duvel Moortgat", Description: "Brewery in Puurs", PostalCode: "2870"},
	}
	brewerIDs := make(map[string]int, len(brewers))
	for _, b := range brewers {
		id, err := upsertBrewer(ctx, pool, b)
		if err != nil {
			return fmt.Errorf("upsert brewer %s: %w", b.Name, err)
		}
		brewerIDs[b.Name] = id
	}

	beers := []beerSeed{
		{Brewer: "Bavik", Name: "Bavik Pils", Description: "Crisp lager", Price: "1.02", AlcoholPercent: "5.2"},
		{Brewer: "Bavik", Name: "Wittekerke", Description: "Belgian wheat beer", Price: "0.85", AlcoholPercent: "5.0"},
		{Brewer: "Rodenbach", Name: "Rodenbach Grand Cru", Description: "Oak-aged sour ale", Price: "2.15", AlcoholPercent: "6.0"},
		{Brewer: "Duvel Moortgat", Name: "Duvel", Description: "Strong golden ale", Price: "1.95", AlcoholPercent: "8.5"},
	}
	for _, b := range beers {
		if err := upsertBeer(ctx, pool, brewerIDs[b.Brewer], b); err != nil {
			return fmt.Errorf("upsert beer %s: %w", b.Name, err)
		}
	}

	return nil
}

func upsertLocation(ctx context.Context, pool *pgxpool.Pool, l locationSeed) error {
	const q = `
INSERT INTO locations (postal_code, name)
VALUES ($1, $2)
ON CONFLICT (postal_code) DO UPDATE SET name = EXCLUDED.name
`
	_, err := pool.Exec(ctx, q, l.PostalCode, l.Name)
	return err
}

func upsertBrewer(ctx context.Context, pool *pgxpool.Pool, b brewerSeed) (int, error) {
	const q = `
INSERT INTO brewers (name, description, postal_code)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    postal_code = EXCLUDED.postal_code
RETURNING id
`
	var id int
	err := pool.QueryRow(ctx, q, b.Name, b.Description, b.PostalCode).Scan(&id)
	return id, err
}

func upsertBeer(ctx context.Context, pool *pgxpool.Pool, brewerID int, b beerSeed) error {
	const q = `
INSERT INTO beers (brewer_id, name, description, price, alcohol_percent)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
ON CONFLICT (brewer_id, name) DO UPDATE SET
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    alcohol_percent = EXCLUDED.alcohol_percent
`
	_, err := pool.Exec(ctx, q, brewerID, b.Name, b.Description, b.Price, b.AlcoholPercent)
	return err
}
