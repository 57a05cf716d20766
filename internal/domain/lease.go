package domain

import "github.com/shopspring/decimal"

// LeaseStatus is the lifecycle status of a lease.
type LeaseStatus string

// Lease statuses.
const (
	LeaseActive     LeaseStatus = "actif"
	LeaseCompleted  LeaseStatus = "termine"
	LeaseTerminated LeaseStatus = "resilie"
)

// Lease is a contract binding one unit and one tenant. Unit and tenant
// references are fixed at creation; only dates, amounts and status change
// afterwards. Archiving toggles visibility without deleting.
//
// Depending on the endpoint the server emits either id or contrat_id and
// either statut or contrat_statut; Normalize collapses them so downstream
// code works against one shape.
type Lease struct {
	ID        int64 `json:"id"`
	ContratID int64 `json:"contrat_id,omitempty"`
	UnitID    int64 `json:"bien_id"`
	TenantID  int64 `json:"locataire_id"`

	DateDebut Date `json:"date_debut"`
	DateFin   Date `json:"date_fin"`

	MontantLoyer   decimal.Decimal `json:"montant_loyer"`
	MontantCaution decimal.Decimal `json:"montant_caution"`
	JourPaiement   int             `json:"jour_paiement"`

	Charges              decimal.Decimal `json:"charges"`
	ChargesStructurelles decimal.Decimal `json:"charges_structurelles,omitempty"`
	MontantEau           decimal.Decimal `json:"montant_eau,omitempty"`
	MontantInternet      decimal.Decimal `json:"montant_internet,omitempty"`
	TVA                  decimal.Decimal `json:"tva,omitempty"`
	MontantRegulariser   decimal.Decimal `json:"montant_regulariser,omitempty"`

	AncienIndexEau decimal.Decimal `json:"ancien_index_eau,omitempty"`
	NouvelIndexEau decimal.Decimal `json:"nouvel_index_eau,omitempty"`
	DateReleveEau  Date            `json:"date_releve_eau,omitempty"`

	Archive     FlexBool `json:"archive,omitempty"`
	DateArchive Date     `json:"date_archive,omitempty"`

	Status        LeaseStatus `json:"statut,omitempty"`
	ContratStatut LeaseStatus `json:"contrat_statut,omitempty"`

	TenantNom       string `json:"locataire_nom,omitempty"`
	TenantTelephone string `json:"locataire_tel,omitempty"`
	UnitAdresse     string `json:"bien_adresse,omitempty"`
	OwnerNom        string `json:"proprietaire_nom,omitempty"`
	CreatedAt       Date   `json:"created_at,omitempty"`
}

// Normalize resolves the id/contrat_id and statut/contrat_statut aliases.
// The API client applies it to every decoded lease.
func (l *Lease) Normalize() {
	if l.ID == 0 {
		l.ID = l.ContratID
	}
	if l.Status == "" {
		l.Status = l.ContratStatut
	}
}

// IsActive reports whether the lease is active and not archived.
func (l Lease) IsActive() bool {
	return l.Status == LeaseActive && !l.Archive.Bool()
}

// TotalMonthly is the rent plus periodic charges, the amount the tenant
// portal pre-fills when reporting a payment.
func (l Lease) TotalMonthly() decimal.Decimal {
	return l.MontantLoyer.Add(l.Charges)
}

// LeaseDraft is the payload for creating a lease.
type LeaseDraft struct {
	UnitID   int64 `json:"bien_id"`
	TenantID int64 `json:"locataire_id"`

	DateDebut Date `json:"date_debut"`
	DateFin   Date `json:"date_fin"`

	MontantLoyer   decimal.Decimal `json:"montant_loyer"`
	MontantCaution decimal.Decimal `json:"montant_caution"`
	JourPaiement   int             `json:"jour_paiement"`

	Charges              decimal.Decimal `json:"charges"`
	ChargesStructurelles decimal.Decimal `json:"charges_structurelles"`
	MontantEau           decimal.Decimal `json:"montant_eau"`
	MontantInternet      decimal.Decimal `json:"montant_internet"`
	TVA                  decimal.Decimal `json:"tva"`

	// TenantKind selects the conditional charge: internet applies to
	// particuliers, VAT to entreprises. ApplyKind zeroes the other one.
	TenantKind TenantKind `json:"-"`
}

// ApplyKind zeroes whichever conditional charge does not apply to the
// tenant kind, mirroring what the server expects.
func (d *LeaseDraft) ApplyKind() {
	switch d.TenantKind {
	case TenantBusiness:
		d.MontantInternet = decimal.Zero
	case TenantIndividual:
		d.TVA = decimal.Zero
	}
}

// Validate checks required fields and the charge-exclusivity invariant
// before submission.
func (d LeaseDraft) Validate() error {
	if d.UnitID == 0 {
		return required("bien_id")
	}
	if d.TenantID == 0 {
		return required("locataire_id")
	}
	if d.DateDebut.IsZero() {
		return required("date_debut")
	}
	if d.DateFin.IsZero() {
		return required("date_fin")
	}
	if d.DateFin.Before(d.DateDebut) {
		return invalid("date_fin", "antérieure à la date de début")
	}
	if d.MontantLoyer.LessThanOrEqual(decimal.Zero) {
		return invalid("montant_loyer", "doit être positif")
	}
	if d.JourPaiement < 1 || d.JourPaiement > 31 {
		return invalid("jour_paiement", "doit être entre 1 et 31")
	}
	// Exactly one of internet / VAT may be set, driven by tenant kind.
	if d.MontantInternet.IsPositive() && d.TVA.IsPositive() {
		return invalid("tva", "internet et TVA sont exclusifs")
	}
	if d.TenantKind == TenantIndividual && d.TVA.IsPositive() {
		return invalid("tva", "non applicable à un particulier")
	}
	if d.TenantKind == TenantBusiness && d.MontantInternet.IsPositive() {
		return invalid("montant_internet", "non applicable à une entreprise")
	}
	return nil
}

// LeaseUpdate carries the mutable lease fields. The server treats the
// update as partial, so amounts and dates are pointers: nil fields stay
// off the wire and keep their stored value. Unit and tenant are
// immutable after creation and deliberately absent.
type LeaseUpdate struct {
	DateFin              *Date            `json:"date_fin,omitempty"`
	MontantLoyer         *decimal.Decimal `json:"montant_loyer,omitempty"`
	MontantCaution       *decimal.Decimal `json:"montant_caution,omitempty"`
	JourPaiement         *int             `json:"jour_paiement,omitempty"`
	Charges              *decimal.Decimal `json:"charges,omitempty"`
	ChargesStructurelles *decimal.Decimal `json:"charges_structurelles,omitempty"`
	MontantEau           *decimal.Decimal `json:"montant_eau,omitempty"`
	MontantInternet      *decimal.Decimal `json:"montant_internet,omitempty"`
	TVA                  *decimal.Decimal `json:"tva,omitempty"`
	Status               LeaseStatus      `json:"statut,omitempty"`
}
