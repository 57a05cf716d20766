package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// DocumentService triggers server-side PDF generation. Each call returns
// a URL the caller opens; the PDF content never passes through here.
type DocumentService struct {
	client *Client
}

// GenerateReceipt produces the rent receipt (quittance) for a payment.
func (s *DocumentService) GenerateReceipt(ctx context.Context, paymentID int64) (DocumentResponse, error) {
	return postJSON[DocumentResponse](ctx, s.client, fmt.Sprintf("/pdf/quittance/%d", paymentID), nil)
}

// GenerateDueNotice produces the avis d'échéance for a lease and month.
func (s *DocumentService) GenerateDueNotice(ctx context.Context, leaseID int64, month domain.Date) (DocumentResponse, error) {
	body := map[string]string{"mois_concerne": month.MonthKey()}
	return postJSON[DocumentResponse](ctx, s.client, fmt.Sprintf("/pdf/avis-echeance/%d", leaseID), body)
}

// GenerateDepositReceipt produces the quittance de caution. A zero
// amount falls back to the customary two months of rent.
func (s *DocumentService) GenerateDepositReceipt(ctx context.Context, lease domain.Lease, amount decimal.Decimal) (DocumentResponse, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		amount = lease.MontantCaution
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		amount = lease.MontantLoyer.Mul(decimal.NewFromInt(2))
	}
	body := map[string]decimal.Decimal{"montant_caution": amount}
	return postJSON[DocumentResponse](ctx, s.client, fmt.Sprintf("/pdf/quittance-caution/%d", lease.ID), body)
}
