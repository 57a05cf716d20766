package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// PortalService is the tenant self-service API. The server scopes every
// call to the authenticated tenant's own records.
type PortalService struct {
	client *Client
}

// SubmitPaymentResponse is the envelope for a self-reported payment,
// including the stored attachment file names.
type SubmitPaymentResponse struct {
	ID            int64  `json:"id"`
	Message       string `json:"message"`
	PhotoEau      string `json:"photo_eau,omitempty"`
	PhotoPaiement string `json:"photo_paiement,omitempty"`
}

// MyLeases fetches the tenant's own leases.
func (s *PortalService) MyLeases(ctx context.Context) ([]domain.Lease, error) {
	leases, err := getJSON[[]domain.Lease](ctx, s.client, "/locataire/mes-contrats")
	return normalizeLeases(leases), err
}

// MyLease fetches the tenant's current lease.
func (s *PortalService) MyLease(ctx context.Context) (domain.Lease, error) {
	lease, err := getJSON[domain.Lease](ctx, s.client, "/locataire/mon-contrat")
	lease.Normalize()
	return lease, err
}

// MyPayments fetches the tenant's own payment history.
func (s *PortalService) MyPayments(ctx context.Context) ([]domain.Payment, error) {
	return getJSON[[]domain.Payment](ctx, s.client, "/locataire/mes-paiements")
}

// MyNotices fetches the tenant's notification feed, reminder-backed
// notices included.
func (s *PortalService) MyNotices(ctx context.Context) ([]domain.TenantNotice, error) {
	return getJSON[[]domain.TenantNotice](ctx, s.client, "/locataire/mes-echeances")
}

// MarkReminderRead acknowledges a reminder-backed notice. Satisfies
// notify.Marker.
func (s *PortalService) MarkReminderRead(ctx context.Context, rappelID int64) error {
	_, err := postJSON[MutationResponse](ctx, s.client, fmt.Sprintf("/locataire/marquer-rappel-lu/%d", rappelID), nil)
	return err
}

// GenerateReceipt produces the receipt for one of the tenant's own
// payments.
func (s *PortalService) GenerateReceipt(ctx context.Context, paymentID int64) (DocumentResponse, error) {
	return postJSON[DocumentResponse](ctx, s.client, fmt.Sprintf("/locataire/generer-quittance/%d", paymentID), nil)
}

// SubmitPayment posts a self-reported payment as a multipart form with
// the water-meter reading and optional photo attachments.
func (s *PortalService) SubmitPayment(ctx context.Context, report domain.SelfReport) (SubmitPaymentResponse, error) {
	if err := report.Validate(); err != nil {
		return SubmitPaymentResponse{}, err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	// The server expects the first-of-month date, not the bare month.
	fields := map[string]string{
		"contrat_id":       fmt.Sprintf("%d", report.LeaseID),
		"nouvel_index_eau": report.NouvelIndexEau.String(),
		"montant_paye":     report.MontantPaye.String(),
		"mode_paiement":    report.ModePaiement,
		"mois_concerne":    report.MoisConcerne.MonthKey() + "-01",
	}
	if !report.DateReleveEau.IsZero() {
		fields["date_releve_eau"] = report.DateReleveEau.Format("2006-01-02")
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return SubmitPaymentResponse{}, fmt.Errorf("api: writing form field %s: %w", name, err)
		}
	}
	if err := attach(form, "photo_eau", report.PhotoEauName, report.PhotoEau); err != nil {
		return SubmitPaymentResponse{}, err
	}
	if err := attach(form, "photo_paiement", report.PhotoPaiementName, report.PhotoPaiement); err != nil {
		return SubmitPaymentResponse{}, err
	}
	if err := form.Close(); err != nil {
		return SubmitPaymentResponse{}, fmt.Errorf("api: closing form: %w", err)
	}

	var out SubmitPaymentResponse
	err := s.client.do(ctx, http.MethodPost, "/locataire/soumettre-paiement", &buf, form.FormDataContentType(), &out)
	return out, err
}

func attach(form *multipart.Writer, field, name string, content []byte) error {
	if len(content) == 0 {
		return nil
	}
	if name == "" {
		name = field + ".jpg"
	}
	w, err := form.CreateFormFile(field, name)
	if err != nil {
		return fmt.Errorf("api: attaching %s: %w", field, err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("api: writing %s: %w", field, err)
	}
	return nil
}
