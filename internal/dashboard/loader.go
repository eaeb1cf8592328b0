// Package dashboard assembles the operations overview: active rides,
// pending parcels, listings awaiting approval, and the recent audit
// trail, loaded together in one snapshot.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ev-platform/evctl/internal/api"
)

// Snapshot is one combined dashboard load.
type Snapshot struct {
	ActiveRides     []api.Ride
	PendingParcels  []api.Parcel
	PendingListings []api.Vehicle
	RecentAudit     []api.AuditLog
	LoadedAt        time.Time
}

// Loader fetches dashboard snapshots from the backend.
type Loader struct {
	client *api.Client
	logger *slog.Logger

	// AuditLimit bounds the audit trail portion of a snapshot.
	AuditLimit int
}

// NewLoader creates a dashboard loader.
func NewLoader(client *api.Client, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{client: client, logger: logger, AuditLimit: 20}
}

// Load fetches all dashboard sections concurrently. The join is
// all-or-nothing: if any section fails, the whole snapshot fails and the
// caller falls back to its empty state. There is no partial result.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rides, err := l.client.Rides.List(ctx, api.RideInProgress, api.ListOptions{})
		if err != nil {
			return err
		}
		snap.ActiveRides = rides
		return nil
	})

	g.Go(func() error {
		parcels, err := l.client.Parcels.List(ctx, api.RideCreated, api.ListOptions{})
		if err != nil {
			return err
		}
		snap.PendingParcels = parcels
		return nil
	})

	g.Go(func() error {
		// Pending listings are excluded from the default search result,
		// so the full set is requested and narrowed here.
		filters := api.VehicleFilters{IncludeUnapproved: true}
		vehicles, err := l.client.Vehicles.List(ctx, filters, api.ListOptions{})
		if err != nil {
			return err
		}
		// Only listings still waiting on an operator decision.
		for _, v := range vehicles {
			if v.Status == api.ListingPending {
				snap.PendingListings = append(snap.PendingListings, v)
			}
		}
		return nil
	})

	g.Go(func() error {
		logs, err := l.client.Audit.List(ctx, "", api.ListOptions{Limit: l.AuditLimit})
		if err != nil {
			return err
		}
		snap.RecentAudit = logs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.LoadedAt = time.Now()
	return snap, nil
}

// Watch reloads the snapshot on a fixed interval until the context is
// cancelled, invoking fn with each result. A failed load reports a nil
// snapshot and the error; polling continues regardless.
func (l *Loader) Watch(ctx context.Context, interval time.Duration, fn func(*Snapshot, error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(l.Load(ctx))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(l.Load(ctx))
		}
	}
}
