package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
	"github.com/Sodamareme/gestion-loyer-cli/internal/sorting"
)

func TestParseMonth(t *testing.T) {
	d, err := parseMonth("2026-08")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2026, time.August, 1), d)

	_, err = parseMonth("aout 2026")
	assert.Error(t, err)
	_, err = parseMonth("")
	assert.Error(t, err)
}

func TestBuildPaymentDraft(t *testing.T) {
	draft, err := buildPaymentDraft(7, "155000", "2026-08-28", domain.PayCash, "2026-08", "RECU-12")
	require.NoError(t, err)
	assert.Equal(t, int64(7), draft.LeaseID)
	assert.True(t, draft.MontantPaye.Equal(decimal.NewFromInt(155000)))
	assert.Equal(t, domain.NewDate(2026, time.August, 28), draft.DatePaiement)
	assert.Equal(t, domain.NewDate(2026, time.August, 1), draft.MoisConcerne)
	require.NoError(t, draft.Validate())

	// Date and month default to today and the current month.
	draft, err = buildPaymentDraft(7, "155000", "", domain.PayMobileMoney, "", "")
	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, domain.DateOf(now), draft.DatePaiement)
	assert.Equal(t, domain.NewDate(now.Year(), now.Month(), 1), draft.MoisConcerne)

	_, err = buildPaymentDraft(7, "pas un montant", "", domain.PayCash, "", "")
	assert.Error(t, err)
}

func TestSortListing(t *testing.T) {
	units := []domain.Unit{
		{ID: 1, Surface: 40},
		{ID: 2, Surface: 90},
	}

	// No sort flag: load order preserved.
	got := sortListing(sorting.UnitFields(), units, "", false)
	assert.Equal(t, int64(1), got[0].ID)

	// Surface defaults to descending.
	got = sortListing(sorting.UnitFields(), units, "surface", false)
	assert.Equal(t, int64(2), got[0].ID)

	got = sortListing(sorting.UnitFields(), units, "adresse", true)
	assert.Len(t, got, 2)
}
