// Package api provides typed access to the marketplace backend. Each
// resource gets a service over the shared request gateway; inputs are
// validated locally before any call leaves the process.
package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/ev-platform/evctl/internal/gateway"
)

// Client bundles the per-resource services.
type Client struct {
	gw       *gateway.Client
	validate *validator.Validate

	Users    *UsersService
	Rides    *RidesService
	Parcels  *ParcelsService
	Vehicles *VehiclesService
	Rentals  *RentalsService
	Payments *PaymentsService
	Rewards  *RewardsService
	Audit    *AuditService
}

// NewClient creates an API client over the given gateway.
func NewClient(gw *gateway.Client) *Client {
	c := &Client{
		gw:       gw,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	c.Users = &UsersService{c: c}
	c.Rides = &RidesService{c: c}
	c.Parcels = &ParcelsService{c: c}
	c.Vehicles = &VehiclesService{c: c}
	c.Rentals = &RentalsService{c: c}
	c.Payments = &PaymentsService{c: c}
	c.Rewards = &RewardsService{c: c}
	c.Audit = &AuditService{c: c}
	return c
}

// Gateway exposes the underlying gateway, mainly for timeout lookups.
func (c *Client) Gateway() *gateway.Client {
	return c.gw
}

// check validates a request payload before it reaches the gateway.
func (c *Client) check(req any) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// ListOptions carries common pagination parameters.
type ListOptions struct {
	Limit  int
	Offset int
}

// pageQuery encodes pagination values into existing query values.
func pageQuery(q url.Values, opts ListOptions) url.Values {
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	return q
}

// withQuery appends encoded query values to a path.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
