package domain

// TenantKind distinguishes individual tenants from businesses. The kind
// decides which lease charge applies: internet for particuliers, VAT for
// entreprises, never both.
type TenantKind string

// Tenant kinds.
const (
	TenantIndividual TenantKind = "particulier"
	TenantBusiness   TenantKind = "entreprise"
)

// Tenant is a renter (locataire). Its login identity lives in the external
// auth service; the client only carries the returned credentials envelope.
type Tenant struct {
	ID        int64      `json:"id"`
	Nom       string     `json:"nom"`
	Telephone string     `json:"telephone"`
	Email     string     `json:"email,omitempty"`
	Kind      TenantKind `json:"type,omitempty"`
	CreatedAt Date       `json:"created_at,omitempty"`
}

// TenantDraft is the payload for creating or updating a tenant.
type TenantDraft struct {
	Nom       string     `json:"nom"`
	Telephone string     `json:"telephone"`
	Email     string     `json:"email,omitempty"`
	Kind      TenantKind `json:"type,omitempty"`
}

// Validate checks required fields before submission.
func (d TenantDraft) Validate() error {
	if d.Nom == "" {
		return required("nom")
	}
	if d.Telephone == "" {
		return required("telephone")
	}
	if d.Kind != "" && d.Kind != TenantIndividual && d.Kind != TenantBusiness {
		return invalid("type", "doit être particulier ou entreprise")
	}
	return nil
}

// Credentials is the login identity the server generates when a tenant is
// created or their password is reset. It is displayed once, never stored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Info     string `json:"info"`
}
