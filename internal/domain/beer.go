package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Beer is a catalog product. Price carries the catalog's decimal currency
// precision; cart and order totals are derived from it and never stored
// alongside the beer.
type Beer struct {
	ID             int             `json:"id"`
	BrewerID       int             `json:"brewerId"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	AlcoholPercent decimal.Decimal `json:"alcoholPercent"`
	CreatedAt      time.Time       `json:"createdAt"`
}
