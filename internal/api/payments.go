package api

import (
	"context"
	"net/url"
)

// PaymentsService covers payment intent and history endpoints. Payment
// execution itself happens at the external gateway; this surface only
// creates intents and reads state.
type PaymentsService struct {
	c *Client
}

// CreateIntent requests a payment intent for a ride, parcel, rental, or
// deposit.
func (s *PaymentsService) CreateIntent(ctx context.Context, req PaymentIntentCreate) (*PaymentIntent, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var intent PaymentIntent
	if err := s.c.gw.Post(ctx, "/payments/intents", req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// Get returns a single payment record.
func (s *PaymentsService) Get(ctx context.Context, id string) (*Payment, error) {
	var payment Payment
	if err := s.c.gw.Get(ctx, "/payments/"+id, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns the caller's payment history.
func (s *PaymentsService) List(ctx context.Context, opts ListOptions) ([]Payment, error) {
	var payments []Payment
	path := withQuery("/payments/", pageQuery(url.Values{}, opts))
	if err := s.c.gw.Get(ctx, path, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
