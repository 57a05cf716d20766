package api

import (
	"context"
	"fmt"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// TenantService manages locataires and their login identities.
type TenantService struct {
	client *Client
}

// CreateTenantResponse is the creation envelope. Credentials is only set
// when the server generated a portal login; it is shown once and never
// retrievable again.
type CreateTenantResponse struct {
	ID          int64               `json:"id"`
	Message     string              `json:"message"`
	Credentials *domain.Credentials `json:"credentials,omitempty"`
}

// ResetPasswordResponse carries the freshly generated password.
type ResetPasswordResponse struct {
	Message     string `json:"message"`
	NewPassword string `json:"newPassword"`
	Info        string `json:"info"`
}

// List fetches all tenants.
func (s *TenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	return getJSON[[]domain.Tenant](ctx, s.client, "/locataires")
}

// Create submits a new tenant; the response may carry generated portal
// credentials.
func (s *TenantService) Create(ctx context.Context, draft domain.TenantDraft) (CreateTenantResponse, error) {
	if err := draft.Validate(); err != nil {
		return CreateTenantResponse{}, err
	}
	return postJSON[CreateTenantResponse](ctx, s.client, "/locataires", draft)
}

// Update replaces the tenant's mutable fields.
func (s *TenantService) Update(ctx context.Context, id int64, draft domain.TenantDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return putJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/locataires/%d", id), draft)
}

// ResetPassword generates a new portal password for the tenant.
func (s *TenantService) ResetPassword(ctx context.Context, id int64) (ResetPasswordResponse, error) {
	return postJSON[ResetPasswordResponse](ctx, s.client, fmt.Sprintf("/locataires/%d/reset-password", id), nil)
}
