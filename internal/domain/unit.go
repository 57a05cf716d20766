package domain

// UnitType is the physical kind of a rental unit.
type UnitType string

// Unit types, matching the server's fixed enumeration.
const (
	UnitRoom       UnitType = "chambre"
	UnitApartment  UnitType = "appartement"
	UnitHouse      UnitType = "maison"
	UnitStudio     UnitType = "studio"
	UnitVilla      UnitType = "villa"
	UnitOffice     UnitType = "bureau"
	UnitCommercial UnitType = "commerce"
)

// UnitTypes lists all valid unit types.
func UnitTypes() []UnitType {
	return []UnitType{UnitRoom, UnitApartment, UnitHouse, UnitStudio, UnitVilla, UnitOffice, UnitCommercial}
}

// UnitStatus is the occupancy status of a unit. Transitions are
// server-owned: creation of an active lease flips the unit to loue,
// lease end flips it back. The client only reflects the value.
type UnitStatus string

// Unit statuses.
const (
	UnitAvailable UnitStatus = "disponible"
	UnitRented    UnitStatus = "loue"
)

// Unit is a rentable property (bien). OwnerNom and OwnerTelephone are
// denormalized display fields supplied by the server join.
type Unit struct {
	ID             int64      `json:"id"`
	NumeroBien     string     `json:"numero_bien"`
	OwnerID        int64      `json:"proprietaire_id"`
	Adresse        string     `json:"adresse"`
	Type           UnitType   `json:"type"`
	Surface        float64    `json:"surface"`
	NombrePieces   int        `json:"nombre_pieces"`
	Description    string     `json:"description,omitempty"`
	Status         UnitStatus `json:"statut"`
	OwnerNom       string     `json:"proprietaire_nom,omitempty"`
	OwnerTelephone string     `json:"proprietaire_telephone,omitempty"`
	CreatedAt      Date       `json:"created_at,omitempty"`
}

// CanDelete reports whether the client may request deletion. A rented
// unit must not be deleted; the server enforces the same rule, this guard
// just blocks the call before it leaves the machine.
func (u Unit) CanDelete() bool {
	return u.Status != UnitRented
}

// UnitDraft is the payload for creating or updating a unit. The unit
// number and status are server-generated and never submitted.
type UnitDraft struct {
	OwnerID      int64    `json:"proprietaire_id"`
	Adresse      string   `json:"adresse"`
	Type         UnitType `json:"type"`
	Surface      float64  `json:"surface"`
	NombrePieces int      `json:"nombre_pieces"`
	Description  string   `json:"description,omitempty"`
}

// Validate checks required fields before submission.
func (d UnitDraft) Validate() error {
	if d.OwnerID == 0 {
		return required("proprietaire_id")
	}
	if d.Adresse == "" {
		return required("adresse")
	}
	if d.Type == "" {
		return required("type")
	}
	valid := false
	for _, t := range UnitTypes() {
		if d.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		return invalid("type", "type de bien inconnu")
	}
	if d.Surface <= 0 {
		return invalid("surface", "doit être positive")
	}
	if d.NombrePieces <= 0 {
		return invalid("nombre_pieces", "doit être positif")
	}
	return nil
}
