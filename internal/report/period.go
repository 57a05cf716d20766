package report

import (
	"time"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// PeriodKind selects a reporting period relative to "now".
type PeriodKind string

// Period kinds.
const (
	PeriodCurrentMonth  PeriodKind = "mois"
	PeriodPreviousMonth PeriodKind = "mois_precedent"
	PeriodQuarter       PeriodKind = "trimestre"
	PeriodYear          PeriodKind = "annee"
	PeriodCustom        PeriodKind = "custom"
)

// Period is the reporting window. From/To are only read for PeriodCustom
// and hold an inclusive month range.
type Period struct {
	Kind PeriodKind
	From domain.Date
	To   domain.Date
}

// Bounds resolves the period to inclusive calendar-date bounds at now.
func (p Period) Bounds(now time.Time) (from, to domain.Date) {
	year, month, _ := now.Date()
	switch p.Kind {
	case PeriodPreviousMonth:
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return domain.DateOf(first), domain.DateOf(first.AddDate(0, 1, -1))
	case PeriodQuarter:
		q := (int(month) - 1) / 3
		first := time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
		return domain.DateOf(first), domain.DateOf(first.AddDate(0, 3, -1))
	case PeriodYear:
		return domain.NewDate(year, time.January, 1), domain.NewDate(year, time.December, 31)
	case PeriodCustom:
		from = domain.NewDate(p.From.Year(), p.From.Month(), 1)
		last := time.Date(p.To.Year(), p.To.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
		return from, domain.DateOf(last)
	default: // current month
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		return domain.DateOf(first), domain.DateOf(first.AddDate(0, 1, -1))
	}
}
