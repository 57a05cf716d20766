package sorting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

func unitIDs(units []domain.Unit) []int64 {
	ids := make([]int64, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	return ids
}

func TestSortReturnsNewSlice(t *testing.T) {
	units := []domain.Unit{
		{ID: 1, Surface: 40},
		{ID: 2, Surface: 90},
	}
	sorted := UnitFields().Sort(units, "surface", Descending)
	assert.Equal(t, []int64{2, 1}, unitIDs(sorted))
	assert.Equal(t, []int64{1, 2}, unitIDs(units), "input order untouched")
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	units := []domain.Unit{
		{ID: 1, Surface: 60},
		{ID: 2, Surface: 60},
		{ID: 3, Surface: 90},
		{ID: 4, Surface: 60},
	}
	fields := UnitFields()

	asc := fields.Sort(units, "surface", Ascending)
	assert.Equal(t, []int64{1, 2, 4, 3}, unitIDs(asc))

	// Equal keys keep input order in either direction.
	desc := fields.Sort(units, "surface", Descending)
	assert.Equal(t, []int64{3, 1, 2, 4}, unitIDs(desc))
}

func TestSortRoundTrip(t *testing.T) {
	units := []domain.Unit{
		{ID: 1, Surface: 40},
		{ID: 2, Surface: 90},
		{ID: 3, Surface: 60},
	}
	fields := UnitFields()

	asc := fields.Sort(units, "surface", Ascending)
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	desc := fields.Sort(units, "surface", Descending)
	assert.Equal(t, unitIDs(desc), unitIDs(asc))
}

func TestFrenchCollation(t *testing.T) {
	payments := []domain.Payment{
		{ID: 1, TenantNom: "Sy"},
		{ID: 2, TenantNom: "Élise"},
		{ID: 3, TenantNom: "Emma"},
	}
	sorted := PaymentFields().Sort(payments, "locataire", Ascending)
	require.Len(t, sorted, 3)
	// É sorts with E, not after Z.
	assert.Equal(t, "Élise", sorted[0].TenantNom)
	assert.Equal(t, "Emma", sorted[1].TenantNom)
	assert.Equal(t, "Sy", sorted[2].TenantNom)
}

func TestUnknownFieldReturnsCopyUnchanged(t *testing.T) {
	units := []domain.Unit{{ID: 2}, {ID: 1}}
	sorted := UnitFields().Sort(units, "inconnu", Ascending)
	assert.Equal(t, []int64{2, 1}, unitIDs(sorted))
}

func TestToggleSelectionRule(t *testing.T) {
	fields := UnitFields()

	// New field starts at its default direction.
	state := fields.Toggle(State{}, "surface")
	assert.Equal(t, State{Field: "surface", Direction: Descending}, state)

	// Re-selecting flips.
	state = fields.Toggle(state, "surface")
	assert.Equal(t, State{Field: "surface", Direction: Ascending}, state)

	// Switching fields resets to the new field's default.
	state = fields.Toggle(state, "adresse")
	assert.Equal(t, State{Field: "adresse", Direction: Ascending}, state)
}

func TestLeaseAmountSort(t *testing.T) {
	leases := []domain.Lease{
		{ID: 1, MontantLoyer: decimal.NewFromInt(100000)},
		{ID: 2, MontantLoyer: decimal.NewFromInt(250000)},
		{ID: 3, MontantLoyer: decimal.NewFromInt(175000)},
	}
	sorted := LeaseFields().Sort(leases, "loyer", Descending)
	assert.Equal(t, int64(2), sorted[0].ID)
	assert.Equal(t, int64(3), sorted[1].ID)
	assert.Equal(t, int64(1), sorted[2].ID)
}
