package domain

import "time"

// Brewer groups beers in the catalog.
type Brewer struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PostalCode  string    `json:"postalCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
