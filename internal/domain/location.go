package domain

// Location is read-only reference data for shipping destinations,
// keyed by postal code.
type Location struct {
	PostalCode string `json:"postalCode"`
	Name       string `json:"name"`
}
