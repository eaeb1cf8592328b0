package api

import (
	"context"
	"net/url"
)

// RentalsService covers P2P rental endpoints.
type RentalsService struct {
	c *Client
}

// Create books a rental for a vehicle and time window.
func (s *RentalsService) Create(ctx context.Context, req RentalCreate) (*Rental, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var rental Rental
	if err := s.c.gw.Post(ctx, "/rentals/", req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// Get returns a single rental.
func (s *RentalsService) Get(ctx context.Context, id string) (*Rental, error) {
	var rental Rental
	if err := s.c.gw.Get(ctx, "/rentals/"+id, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// Update applies a partial mutation to a rental.
func (s *RentalsService) Update(ctx context.Context, id string, req RentalUpdate) (*Rental, error) {
	var rental Rental
	if err := s.c.gw.Put(ctx, "/rentals/"+id, req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// Return completes a rental with optional evidence photos and notes.
func (s *RentalsService) Return(ctx context.Context, id string, req RentalReturn) (*Rental, error) {
	var rental Rental
	if err := s.c.gw.Post(ctx, "/rentals/"+id+"/return", req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// List returns the caller's rentals.
func (s *RentalsService) List(ctx context.Context, opts ListOptions) ([]Rental, error) {
	var rentals []Rental
	path := withQuery("/rentals/", pageQuery(url.Values{}, opts))
	if err := s.c.gw.Get(ctx, path, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}
