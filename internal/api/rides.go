package api

import (
	"context"
	"net/url"
)

// RidesService covers ride booking and lifecycle endpoints.
type RidesService struct {
	c *Client
}

// Create books a new ride. The backend calculates the estimated fare.
func (s *RidesService) Create(ctx context.Context, req RideCreate) (*Ride, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var ride Ride
	if err := s.c.gw.Post(ctx, "/rides/", req, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

// Get returns a single ride.
func (s *RidesService) Get(ctx context.Context, id string) (*Ride, error) {
	var ride Ride
	if err := s.c.gw.Get(ctx, "/rides/"+id, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

// Update mutates ride status or fare.
func (s *RidesService) Update(ctx context.Context, id string, req RideUpdate) (*Ride, error) {
	var ride Ride
	if err := s.c.gw.Put(ctx, "/rides/"+id, req, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

// Cancel marks a ride cancelled.
func (s *RidesService) Cancel(ctx context.Context, id string) (*Ride, error) {
	status := RideCancelled
	return s.Update(ctx, id, RideUpdate{Status: &status})
}

// List returns the caller's rides, optionally filtered by status.
func (s *RidesService) List(ctx context.Context, status RideStatus, opts ListOptions) ([]Ride, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status_filter", string(status))
	}
	var rides []Ride
	path := withQuery("/rides/", pageQuery(q, opts))
	if err := s.c.gw.Get(ctx, path, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

// AssignDriver assigns a driver to a paid ride (ops surface).
func (s *RidesService) AssignDriver(ctx context.Context, id string) (*Ride, error) {
	var ride Ride
	if err := s.c.gw.Post(ctx, "/rides/"+id+"/assign", nil, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}
