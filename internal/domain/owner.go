package domain

// Owner is a landlord (propriétaire) owning zero or more units.
type Owner struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
	CreatedAt Date   `json:"created_at,omitempty"`
}

// OwnerDraft is the payload for creating or updating an owner.
type OwnerDraft struct {
	Nom       string `json:"nom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
}

// Validate checks required fields before submission.
func (d OwnerDraft) Validate() error {
	if d.Nom == "" {
		return required("nom")
	}
	if d.Telephone == "" {
		return required("telephone")
	}
	return nil
}
