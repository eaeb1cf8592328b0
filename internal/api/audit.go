package api

import (
	"context"
	"net/url"
)

// AuditService covers the audit trail endpoints.
type AuditService struct {
	c *Client
}

// List returns recent audit events (admin surface).
func (s *AuditService) List(ctx context.Context, eventType string, opts ListOptions) ([]AuditLog, error) {
	q := url.Values{}
	if eventType != "" {
		q.Set("event_type", eventType)
	}
	var logs []AuditLog
	path := withQuery("/audit/", pageQuery(q, opts))
	if err := s.c.gw.Get(ctx, path, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// MyEvents returns audit events about the authenticated user.
func (s *AuditService) MyEvents(ctx context.Context, opts ListOptions) ([]AuditLog, error) {
	var logs []AuditLog
	path := withQuery("/audit/my", pageQuery(url.Values{}, opts))
	if err := s.c.gw.Get(ctx, path, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
