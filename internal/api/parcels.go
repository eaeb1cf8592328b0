package api

import (
	"context"
	"net/url"
)

// ParcelsService covers parcel delivery endpoints.
type ParcelsService struct {
	c *Client
}

// Create submits a new parcel delivery.
func (s *ParcelsService) Create(ctx context.Context, req ParcelCreate) (*Parcel, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var parcel Parcel
	if err := s.c.gw.Post(ctx, "/parcels/", req, &parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

// Get returns a single parcel.
func (s *ParcelsService) Get(ctx context.Context, id string) (*Parcel, error) {
	var parcel Parcel
	if err := s.c.gw.Get(ctx, "/parcels/"+id, &parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

// Update applies a partial mutation to a parcel.
func (s *ParcelsService) Update(ctx context.Context, id string, req ParcelUpdate) (*Parcel, error) {
	var parcel Parcel
	if err := s.c.gw.Put(ctx, "/parcels/"+id, req, &parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

// List returns the caller's parcels, optionally filtered by status.
func (s *ParcelsService) List(ctx context.Context, status RideStatus, opts ListOptions) ([]Parcel, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status_filter", string(status))
	}
	var parcels []Parcel
	path := withQuery("/parcels/", pageQuery(q, opts))
	if err := s.c.gw.Get(ctx, path, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}
