package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// UnitService manages biens.
type UnitService struct {
	client *Client
}

// List fetches all units with their denormalized owner fields.
func (s *UnitService) List(ctx context.Context) ([]domain.Unit, error) {
	return getJSON[[]domain.Unit](ctx, s.client, "/biens")
}

// ListAvailable fetches only units currently free to rent. One of the
// few server-side scoped endpoints.
func (s *UnitService) ListAvailable(ctx context.Context) ([]domain.Unit, error) {
	return getJSON[[]domain.Unit](ctx, s.client, "/biens/disponibles")
}

// Create validates the draft locally, then submits it. The unit number
// and status are server-generated.
func (s *UnitService) Create(ctx context.Context, draft domain.UnitDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return postJSON[MutationResponse](ctx, s.client, "/biens", draft)
}

// Update replaces the unit's mutable fields.
func (s *UnitService) Update(ctx context.Context, id int64, draft domain.UnitDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return putJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/biens/%d", id), draft)
}

// Delete removes a unit. The rented-unit guard runs locally first; the
// server enforces the same rule and its rejection is surfaced like any
// other validation failure.
func (s *UnitService) Delete(ctx context.Context, unit domain.Unit) (MutationResponse, error) {
	if !unit.CanDelete() {
		return MutationResponse{}, ErrUnitRented
	}
	var out MutationResponse
	err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/biens/%d", unit.ID), nil, "", &out)
	return out, err
}
