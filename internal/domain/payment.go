package domain

import "github.com/shopspring/decimal"

// Payment methods accepted by the server.
const (
	PayCash        = "Espèces"
	PayCheck       = "Chèque"
	PayTransfer    = "Virement"
	PayMobileMoney = "Mobile Money"
)

// Payment is a recorded rent payment against a lease for a covered month.
// TenantNom, UnitAdresse and MontantLoyer are denormalized display fields
// from the server join. Immutable once created except through an explicit
// update call.
type Payment struct {
	ID           int64           `json:"id"`
	LeaseID      int64           `json:"contrat_id"`
	DatePaiement Date            `json:"date_paiement"`
	MontantPaye  decimal.Decimal `json:"montant_paye"`
	ModePaiement string          `json:"mode_paiement"`
	Reference    string          `json:"reference,omitempty"`
	MoisConcerne Date            `json:"mois_concerne"`

	TenantNom    string          `json:"locataire_nom,omitempty"`
	UnitAdresse  string          `json:"bien_adresse,omitempty"`
	MontantLoyer decimal.Decimal `json:"montant_loyer,omitempty"`

	// Set on tenant self-reported payments only.
	PhotoEau      string `json:"photo_eau,omitempty"`
	PhotoPaiement string `json:"photo_paiement,omitempty"`

	CreatedAt Date `json:"created_at,omitempty"`
}

// PaymentDraft is the payload for recording a payment from the admin side.
type PaymentDraft struct {
	LeaseID      int64           `json:"contrat_id"`
	DatePaiement Date            `json:"date_paiement"`
	MontantPaye  decimal.Decimal `json:"montant_paye"`
	ModePaiement string          `json:"mode_paiement"`
	Reference    string          `json:"reference,omitempty"`
	MoisConcerne Date            `json:"mois_concerne"`
}

// Validate checks required fields before submission.
func (d PaymentDraft) Validate() error {
	if d.LeaseID == 0 {
		return required("contrat_id")
	}
	if d.DatePaiement.IsZero() {
		return required("date_paiement")
	}
	if d.MontantPaye.LessThanOrEqual(decimal.Zero) {
		return invalid("montant_paye", "doit être positif")
	}
	if d.ModePaiement == "" {
		return required("mode_paiement")
	}
	if d.MoisConcerne.IsZero() {
		return required("mois_concerne")
	}
	return nil
}

// SelfReport is a tenant-submitted payment declaration: the payment
// itself plus the water-meter reading and up to two photo attachments.
// It is sent as a multipart form, not JSON.
type SelfReport struct {
	LeaseID        int64
	NouvelIndexEau decimal.Decimal
	DateReleveEau  Date
	MontantPaye    decimal.Decimal
	ModePaiement   string
	MoisConcerne   Date

	// Optional attachment contents, empty when not provided.
	PhotoEau          []byte
	PhotoEauName      string
	PhotoPaiement     []byte
	PhotoPaiementName string
}

// Validate checks the mandatory self-report fields before submission.
func (r SelfReport) Validate() error {
	if r.LeaseID == 0 {
		return required("contrat_id")
	}
	if r.NouvelIndexEau.LessThanOrEqual(decimal.Zero) {
		return required("nouvel_index_eau")
	}
	if r.MontantPaye.LessThanOrEqual(decimal.Zero) {
		return required("montant_paye")
	}
	if r.MoisConcerne.IsZero() {
		return required("mois_concerne")
	}
	return nil
}
