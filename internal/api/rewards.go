package api

import (
	"context"
	"net/url"
)

// RewardsService covers points balance, events, and redemption.
type RewardsService struct {
	c *Client
}

// CreateEvent reports a points-earning event.
func (s *RewardsService) CreateEvent(ctx context.Context, req RewardEventCreate) (*RewardEvent, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var event RewardEvent
	if err := s.c.gw.Post(ctx, "/rewards/events", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Balance returns the caller's reward account.
func (s *RewardsService) Balance(ctx context.Context) (*RewardAccount, error) {
	var account RewardAccount
	if err := s.c.gw.Get(ctx, "/rewards/balance", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Redeem spends points.
func (s *RewardsService) Redeem(ctx context.Context, req RedemptionRequest) (*Redemption, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var redemption Redemption
	if err := s.c.gw.Post(ctx, "/rewards/redeem", req, &redemption); err != nil {
		return nil, err
	}
	return &redemption, nil
}

// ListEvents returns the caller's points history.
func (s *RewardsService) ListEvents(ctx context.Context, opts ListOptions) ([]RewardEvent, error) {
	var events []RewardEvent
	path := withQuery("/rewards/events", pageQuery(url.Values{}, opts))
	if err := s.c.gw.Get(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}
