package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrReasonRequired is returned when a listing rejection carries no
// usable reason. The check runs before any call leaves the process.
var ErrReasonRequired = errors.New("rejection reason is required")

// VehiclesService covers EV listing and approval endpoints.
type VehiclesService struct {
	c *Client
}

// Create registers a new vehicle listing. It starts in pending status
// until an operator approves it.
func (s *VehiclesService) Create(ctx context.Context, req VehicleCreate) (*Vehicle, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var v Vehicle
	if err := s.c.gw.Post(ctx, "/vehicles/", req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Get returns a single listing.
func (s *VehiclesService) Get(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := s.c.gw.Get(ctx, "/vehicles/"+id, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Update mutates a listing.
func (s *VehiclesService) Update(ctx context.Context, id string, req VehicleUpdate) (*Vehicle, error) {
	var v Vehicle
	if err := s.c.gw.Put(ctx, "/vehicles/"+id, req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// List searches listings with optional filters.
func (s *VehiclesService) List(ctx context.Context, filters VehicleFilters, opts ListOptions) ([]Vehicle, error) {
	q := url.Values{}
	if filters.VehicleType != "" {
		q.Set("vehicle_type", string(filters.VehicleType))
	}
	if filters.Lat != nil && filters.Lng != nil {
		q.Set("lat", strconv.FormatFloat(*filters.Lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(*filters.Lng, 'f', -1, 64))
	}
	if filters.RadiusKm != nil {
		q.Set("radius_km", strconv.FormatFloat(*filters.RadiusKm, 'f', -1, 64))
	}
	if filters.MinRate != nil {
		q.Set("min_rate", strconv.FormatFloat(*filters.MinRate, 'f', -1, 64))
	}
	if filters.MaxRate != nil {
		q.Set("max_rate", strconv.FormatFloat(*filters.MaxRate, 'f', -1, 64))
	}
	if filters.IncludeUnapproved {
		// available_only defaults to true server-side; it must be sent
		// explicitly to see listings still awaiting approval.
		q.Set("available_only", "false")
	}

	var vehicles []Vehicle
	path := withQuery("/vehicles/", pageQuery(q, opts))
	if err := s.c.gw.Get(ctx, path, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// MyListings returns the authenticated owner's listings.
func (s *VehiclesService) MyListings(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := s.c.gw.Get(ctx, "/vehicles/my/listings", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Approve marks a pending listing approved (ops surface).
func (s *VehiclesService) Approve(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := s.c.gw.Post(ctx, "/vehicles/"+id+"/approve", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Reject marks a pending listing rejected (ops surface). A non-blank
// reason is mandatory; a whitespace-only reason issues no call at all.
func (s *VehiclesService) Reject(ctx context.Context, id, reason string) (*Vehicle, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	status := ListingRejected
	return s.Update(ctx, id, VehicleUpdate{Status: &status, RejectionReason: &reason})
}
