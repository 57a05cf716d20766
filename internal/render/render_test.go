package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
	"github.com/Sodamareme/gestion-loyer-cli/internal/report"
)

func TestFCFAFormatting(t *testing.T) {
	assert.Equal(t, "150 000 FCFA", fcfa(decimal.NewFromInt(150000)))
	assert.Equal(t, "1 250 000 FCFA", fcfa(decimal.NewFromInt(1250000)))
	assert.Equal(t, "0 FCFA", fcfa(decimal.Zero))
	assert.Equal(t, "-5 000 FCFA", fcfa(decimal.NewFromInt(-5000)))
	assert.Equal(t, "999 FCFA", fcfa(decimal.NewFromInt(999)))
}

func TestDashboardOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Dashboard(report.Dashboard{
		PeriodFrom:     domain.NewDate(2026, time.August, 1),
		PeriodTo:       domain.NewDate(2026, time.August, 31),
		TotalUnits:     3,
		RentedUnits:    2,
		AvailableUnits: 1,
		ActiveLeases:   2,
		Expected:       decimal.NewFromInt(150000),
		Collected:      decimal.NewFromInt(100000),
		CollectionRate: 67,
		RemainingDue:   decimal.NewFromInt(50000),
		RevenueSeries: []report.MonthRevenue{
			{Month: "2026-07", Amount: decimal.NewFromInt(90000)},
			{Month: "2026-08", Amount: decimal.NewFromInt(100000)},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Loyers attendus : 150 000 FCFA")
	assert.Contains(t, out, "Taux de recouvrement : 67%")
	assert.Contains(t, out, "2026-08 : 100 000 FCFA")
	assert.NotContains(t, out, "\033[", "colors disabled")
}

func TestRemindersOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Reminders([]domain.Reminder{
		{LeaseID: 7, TenantNom: "Ndiaye", MontantDu: decimal.NewFromInt(150000), JoursRetard: 18,
			RappelEnvoye: true, RappelLu: false},
	})

	out := buf.String()
	assert.Contains(t, out, "1 impayés pour 150 000 FCFA")
	assert.Contains(t, out, "important")
	assert.Contains(t, out, "envoyé, non lu")
}
