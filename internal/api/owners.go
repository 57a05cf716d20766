package api

import (
	"context"
	"fmt"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// OwnerService manages propriétaires.
type OwnerService struct {
	client *Client
}

// List fetches all owners. Filtering is client side.
func (s *OwnerService) List(ctx context.Context) ([]domain.Owner, error) {
	return getJSON[[]domain.Owner](ctx, s.client, "/proprietaires")
}

// Create validates the draft locally, then submits it.
func (s *OwnerService) Create(ctx context.Context, draft domain.OwnerDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return postJSON[MutationResponse](ctx, s.client, "/proprietaires", draft)
}

// Update replaces the owner's mutable fields.
func (s *OwnerService) Update(ctx context.Context, id int64, draft domain.OwnerDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return putJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/proprietaires/%d", id), draft)
}
