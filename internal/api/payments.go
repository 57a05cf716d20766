package api

import (
	"context"
	"fmt"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
	"github.com/Sodamareme/gestion-loyer-cli/internal/notify"
)

// PaymentService manages paiements and the échéances derived from them.
type PaymentService struct {
	client *Client
}

// List fetches all payments with their denormalized lease fields.
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return getJSON[[]domain.Payment](ctx, s.client, "/paiements")
}

// Create validates and records a payment against a lease.
func (s *PaymentService) Create(ctx context.Context, draft domain.PaymentDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return postJSON[MutationResponse](ctx, s.client, "/paiements", draft)
}

// Update corrects an existing payment.
func (s *PaymentService) Update(ctx context.Context, id int64, draft domain.PaymentDraft) (MutationResponse, error) {
	if err := draft.Validate(); err != nil {
		return MutationResponse{}, err
	}
	return putJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/paiements/%d", id), draft)
}

// HistoryPDFURL is the address of the payment-history PDF export. The
// caller opens it; the document is never fetched through this client.
func (s *PaymentService) HistoryPDFURL() string {
	return s.client.baseURL + "/paiements/historique/pdf"
}

// Reminders fetches the derived overdue-rent alerts and the prior-send
// state attached to each. The server keeps these under its pdf router.
func (s *PaymentService) Reminders(ctx context.Context) ([]domain.Reminder, error) {
	return getJSON[[]domain.Reminder](ctx, s.client, "/pdf/echeances-impayees")
}

// SendReminder delivers a rent reminder to the tenant. Callers build the
// request through notify.PrepareSend so the resend-confirmation rule is
// applied first.
func (s *PaymentService) SendReminder(ctx context.Context, req notify.SendRequest) (MutationResponse, error) {
	return postJSON[MutationResponse](ctx, s.client, "/pdf/envoyer-rappel", req)
}
