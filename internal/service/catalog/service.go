// Package catalog serves the storefront's read side: beers, brewers and
// shipping locations.
package catalog

import (
	"context"

	"beerhall/internal/domain"
)

type beerRepo interface {
	GetAll(ctx context.Context) ([]domain.Beer, error)
	GetByID(ctx context.Context, id int) (*domain.Beer, error)
}

type brewerRepo interface {
	GetAll(ctx context.Context) ([]domain.Brewer, error)
}

type locationRepo interface {
	GetAll(ctx context.Context) ([]domain.Location, error)
}

type Service struct {
	beers     beerRepo
	brewers   brewerRepo
	locations locationRepo
}

func New(beers beerRepo, brewers brewerRepo, locations locationRepo) *Service {
	return &Service{beers: beers, brewers: brewers, locations: locations}
}

// ListBeers returns the full catalog, ordered by name.
func (s *Service) ListBeers(ctx context.Context) ([]domain.Beer, error) {
	return s.beers.GetAll(ctx)
}

func (s *Service) GetBeer(ctx context.Context, id int) (*domain.Beer, error) {
	return s.beers.GetByID(ctx, id)
}

func (s *Service) ListBrewers(ctx context.Context) ([]domain.Brewer, error) {
	return s.brewers.GetAll(ctx)
}

// ListLocations returns the shipping locations offered on the checkout form.
func (s *Service) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.GetAll(ctx)
}
