package api

import (
	"context"
	"fmt"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// LeaseService manages contrats. Every fetched lease is normalized on
// decode so the id/contrat_id and statut/contrat_statut aliases never
// leak past this package.
type LeaseService struct {
	client *Client
}

func normalizeLeases(leases []domain.Lease) []domain.Lease {
	for i := range leases {
		leases[i].Normalize()
	}
	return leases
}

// List fetches the non-archived leases. withArchived widens the listing
// to include archived ones.
func (s *LeaseService) List(ctx context.Context, withArchived bool) ([]domain.Lease, error) {
	path := "/contrats"
	if withArchived {
		path = "/contrats?archives=true"
	}
	leases, err := getJSON[[]domain.Lease](ctx, s.client, path)
	return normalizeLeases(leases), err
}

// ListActive fetches only the active leases, server-side scoped.
func (s *LeaseService) ListActive(ctx context.Context) ([]domain.Lease, error) {
	leases, err := getJSON[[]domain.Lease](ctx, s.client, "/contrats/actifs")
	return normalizeLeases(leases), err
}

// ListArchived fetches only the archived leases.
func (s *LeaseService) ListArchived(ctx context.Context) ([]domain.Lease, error) {
	leases, err := getJSON[[]domain.Lease](ctx, s.client, "/contrats/archives")
	return normalizeLeases(leases), err
}

// Create validates the draft, resolves the kind-dependent charge and
// submits it. The server flips the unit to loue on success.
func (s *LeaseService) Create(ctx context.Context, draft domain.LeaseDraft) (MutationResponse, error) {
	draft.ApplyKind()
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return postJSON[MutationResponse](ctx, s.client, "/contrats", draft)
}

// Update replaces the lease's mutable fields. Unit and tenant are fixed
// at creation and absent from the payload.
func (s *LeaseService) Update(ctx context.Context, id int64, update domain.LeaseUpdate) (MutationResponse, error) {
	return putJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/contrats/%d", id), update)
}

// Archive hides the lease from the default listing without deleting it.
func (s *LeaseService) Archive(ctx context.Context, id int64) (MutationResponse, error) {
	return postJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/contrats/%d/archiver", id), nil)
}

// Unarchive restores an archived lease.
func (s *LeaseService) Unarchive(ctx context.Context, id int64) (MutationResponse, error) {
	return postJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/contrats/%d/desarchiver", id), nil)
}
