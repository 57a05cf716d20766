package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// LoadSnapshot fetches all five collections concurrently and returns
// them as one consistent round. The load is fail fast and all or
// nothing: the first failed fetch cancels the rest and the whole
// snapshot is discarded, never partially returned.
func (c *Client) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		owners, err := c.Owners().List(ctx)
		snap.Owners = owners
		return err
	})
	g.Go(func() error {
		tenants, err := c.Tenants().List(ctx)
		snap.Tenants = tenants
		return err
	})
	g.Go(func() error {
		units, err := c.Units().List(ctx)
		snap.Units = units
		return err
	})
	g.Go(func() error {
		leases, err := c.Leases().List(ctx, true)
		snap.Leases = leases
		return err
	})
	g.Go(func() error {
		payments, err := c.Payments().List(ctx)
		snap.Payments = payments
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}
