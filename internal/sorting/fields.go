package sorting

import (
	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// UnitFields returns the sortable fields of the units list: address
// (alphabetic, ascending), surface and room count (larger first) and
// recency (newest id first).
func UnitFields() Set[domain.Unit] {
	return NewSet(
		Field[domain.Unit]{
			Name: "adresse", Default: Ascending,
			Cmp: func(a, b domain.Unit) int { return CompareStrings(a.Adresse, b.Adresse) },
		},
		Field[domain.Unit]{
			Name: "surface", Default: Descending,
			Cmp: func(a, b domain.Unit) int { return cmpFloat(a.Surface, b.Surface) },
		},
		Field[domain.Unit]{
			Name: "pieces", Default: Descending,
			Cmp: func(a, b domain.Unit) int { return a.NombrePieces - b.NombrePieces },
		},
		Field[domain.Unit]{
			Name: "recent", Default: Descending,
			Cmp: func(a, b domain.Unit) int { return cmpInt64(a.ID, b.ID) },
		},
	)
}

// PaymentFields returns the sortable fields of the payments list: date
// and amount (newest/largest first), tenant name (alphabetic).
func PaymentFields() Set[domain.Payment] {
	return NewSet(
		Field[domain.Payment]{
			Name: "date", Default: Descending,
			Cmp: func(a, b domain.Payment) int { return a.DatePaiement.Compare(b.DatePaiement.Time) },
		},
		Field[domain.Payment]{
			Name: "montant", Default: Descending,
			Cmp: func(a, b domain.Payment) int { return a.MontantPaye.Cmp(b.MontantPaye) },
		},
		Field[domain.Payment]{
			Name: "locataire", Default: Ascending,
			Cmp: func(a, b domain.Payment) int { return CompareStrings(a.TenantNom, b.TenantNom) },
		},
	)
}

// LeaseFields returns the sortable fields of the leases list: start date
// and rent (newest/largest first), tenant name (alphabetic).
func LeaseFields() Set[domain.Lease] {
	return NewSet(
		Field[domain.Lease]{
			Name: "date_debut", Default: Descending,
			Cmp: func(a, b domain.Lease) int { return a.DateDebut.Compare(b.DateDebut.Time) },
		},
		Field[domain.Lease]{
			Name: "loyer", Default: Descending,
			Cmp: func(a, b domain.Lease) int { return a.MontantLoyer.Cmp(b.MontantLoyer) },
		},
		Field[domain.Lease]{
			Name: "locataire", Default: Ascending,
			Cmp: func(a, b domain.Lease) int { return CompareStrings(a.TenantNom, b.TenantNom) },
		},
	)
}
