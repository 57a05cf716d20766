// Package report joins the snapshot collections into the dashboard
// metrics: expected versus collected rent, collection rate, arrears,
// upcoming lease expirations, owner rankings and the trailing revenue
// time series. Everything is recomputed from scratch on every call; there
// is no incremental update and no caching.
package report

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// Days without a recorded payment after which a lease is in arrears.
// A payment exactly arrearsDays old keeps the lease current.
const arrearsDays = 30

// Days ahead scanned for upcoming lease expirations, inclusive.
const expiryWindowDays = 30

// Months covered by the revenue time series, current month included.
const seriesMonths = 6

// Number of owners kept in the revenue ranking.
const topOwnerCount = 5

// Scope narrows the dashboard to one owner, unit type or unit status.
// Zero fields disable the corresponding restriction. The revenue time
// series deliberately ignores the scope: it is a whole-portfolio trend.
type Scope struct {
	OwnerID    int64
	UnitType   domain.UnitType
	UnitStatus domain.UnitStatus
}

func (s Scope) match(u domain.Unit) bool {
	if s.OwnerID != 0 && u.OwnerID != s.OwnerID {
		return false
	}
	if s.UnitType != "" && u.Type != s.UnitType {
		return false
	}
	if s.UnitStatus != "" && u.Status != s.UnitStatus {
		return false
	}
	return true
}

// ArrearsEntry is an active lease with no recent payment. LastPayment is
// the zero Date when the lease never received one, in which case days
// overdue count from the lease start.
type ArrearsEntry struct {
	Lease       domain.Lease
	LastPayment domain.Date
	DaysOverdue int
}

// OwnerRevenue ranks one owner by the monthly rent of their active
// in-scope leases.
type OwnerRevenue struct {
	OwnerID    int64
	Nom        string
	Revenue    decimal.Decimal
	LeaseCount int
}

// MonthRevenue is one point of the revenue time series.
type MonthRevenue struct {
	Month  string // "2006-01"
	Amount decimal.Decimal
}

// Dashboard is the full derived report for one snapshot, period and scope.
type Dashboard struct {
	PeriodFrom domain.Date
	PeriodTo   domain.Date

	TotalUnits     int
	RentedUnits    int
	AvailableUnits int
	ActiveLeases   int

	Expected       decimal.Decimal
	Collected      decimal.Decimal
	CollectionRate int
	RemainingDue   decimal.Decimal

	UpcomingExpirations []domain.Lease
	Arrears             []ArrearsEntry
	TopOwners           []OwnerRevenue
	RevenueSeries       []MonthRevenue
}

// Compute derives the dashboard from one snapshot. now anchors the
// period, the arrears cutoff and the expiry window; all inputs come from
// the same fetch round so the outputs are internally consistent.
func Compute(now time.Time, snap domain.Snapshot, period Period, scope Scope) Dashboard {
	from, to := period.Bounds(now)
	today := domain.DateOf(now)
	units := snap.UnitByID()
	owners := snap.OwnerByID()

	d := Dashboard{PeriodFrom: from, PeriodTo: to}

	for _, u := range snap.Units {
		if !scope.match(u) {
			continue
		}
		d.TotalUnits++
		switch u.Status {
		case domain.UnitRented:
			d.RentedUnits++
		case domain.UnitAvailable:
			d.AvailableUnits++
		}
	}

	// Active leases whose unit passes the scope drive every monetary
	// metric except the portfolio-wide revenue series.
	inScope := make(map[int64]domain.Lease)
	for _, l := range snap.Leases {
		if !l.IsActive() {
			continue
		}
		if u, ok := units[l.UnitID]; ok && !scope.match(u) {
			continue
		}
		inScope[l.ID] = l
		d.ActiveLeases++
		d.Expected = d.Expected.Add(l.MontantLoyer)
	}

	lastPayment := make(map[int64]domain.Date)
	for _, p := range snap.Payments {
		if _, ok := inScope[p.LeaseID]; ok && inDateRange(p.DatePaiement, from, to) {
			d.Collected = d.Collected.Add(p.MontantPaye)
		}
		if prev, seen := lastPayment[p.LeaseID]; !seen || p.DatePaiement.After(prev) {
			lastPayment[p.LeaseID] = p.DatePaiement
		}
	}

	d.CollectionRate = collectionRate(d.Expected, d.Collected)
	d.RemainingDue = d.Expected.Sub(d.Collected)
	if d.RemainingDue.IsNegative() {
		d.RemainingDue = decimal.Zero
	}

	d.UpcomingExpirations = upcomingExpirations(today, inScope, snap.Leases)
	d.Arrears = arrears(today, inScope, snap.Leases, lastPayment)
	d.TopOwners = topOwners(snap.Leases, inScope, units, owners)
	d.RevenueSeries = revenueSeries(now, snap.Payments)
	return d
}

// collectionRate is the rounded collected/expected percentage, zero when
// nothing is expected. Never divides by zero.
func collectionRate(expected, collected decimal.Decimal) int {
	if expected.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	rate := collected.Div(expected).Mul(decimal.NewFromInt(100))
	return int(rate.Round(0).IntPart())
}

// upcomingExpirations lists active in-scope leases ending within the next
// expiryWindowDays, today inclusive. Already-expired leases belong to the
// arrears report, not here.
func upcomingExpirations(today domain.Date, inScope map[int64]domain.Lease, leases []domain.Lease) []domain.Lease {
	horizon := domain.DateOf(today.AddDate(0, 0, expiryWindowDays))
	out := make([]domain.Lease, 0)
	for _, l := range leases {
		if _, ok := inScope[l.ID]; !ok {
			continue
		}
		if l.DateFin.IsZero() || l.DateFin.Before(today) || l.DateFin.After(horizon) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// arrears lists active in-scope leases whose most recent payment is
// absent or strictly older than arrearsDays. The most recent payment is
// taken across all months, not just the reporting period.
func arrears(today domain.Date, inScope map[int64]domain.Lease, leases []domain.Lease, lastPayment map[int64]domain.Date) []ArrearsEntry {
	out := make([]ArrearsEntry, 0)
	for _, l := range leases {
		if _, ok := inScope[l.ID]; !ok {
			continue
		}
		last, paid := lastPayment[l.ID]
		var since int
		if paid {
			since = daysBetween(last, today)
		} else {
			// Never paid: overdue since the lease started.
			since = daysBetween(domain.DateOf(l.DateDebut.Time), today)
		}
		if paid && since <= arrearsDays {
			continue
		}
		if !paid && since < 0 {
			// Lease starts in the future, nothing due yet.
			continue
		}
		entry := ArrearsEntry{Lease: l, DaysOverdue: since}
		if paid {
			entry.LastPayment = last
		}
		out = append(out, entry)
	}
	return out
}

// topOwners ranks owners by the monthly rent of their in-scope active
// leases, descending, top five, ties kept in input order.
func topOwners(leases []domain.Lease, inScope map[int64]domain.Lease, units map[int64]domain.Unit, owners map[int64]domain.Owner) []OwnerRevenue {
	totals := make(map[int64]*OwnerRevenue)
	order := make([]int64, 0)
	for _, l := range leases {
		if _, ok := inScope[l.ID]; !ok {
			continue
		}
		u, ok := units[l.UnitID]
		if !ok {
			continue
		}
		entry, seen := totals[u.OwnerID]
		if !seen {
			entry = &OwnerRevenue{OwnerID: u.OwnerID, Nom: u.OwnerNom}
			if o, ok := owners[u.OwnerID]; ok {
				entry.Nom = o.Nom
			}
			totals[u.OwnerID] = entry
			order = append(order, u.OwnerID)
		}
		entry.Revenue = entry.Revenue.Add(l.MontantLoyer)
		entry.LeaseCount++
	}

	ranked := make([]OwnerRevenue, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *totals[id])
	}
	// Stable sort keeps ties in first-seen order.
	slices.SortStableFunc(ranked, func(a, b OwnerRevenue) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	if len(ranked) > topOwnerCount {
		ranked = ranked[:topOwnerCount]
	}
	return ranked
}

// revenueSeries sums all payments per trailing calendar month, current
// month included, oldest first. The series ignores the scope: it is the
// whole-portfolio trend.
func revenueSeries(now time.Time, payments []domain.Payment) []MonthRevenue {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	series := make([]MonthRevenue, seriesMonths)
	index := make(map[string]int, seriesMonths)
	for i := 0; i < seriesMonths; i++ {
		m := first.AddDate(0, i-(seriesMonths-1), 0)
		key := m.Format("2006-01")
		series[i] = MonthRevenue{Month: key, Amount: decimal.Zero}
		index[key] = i
	}

	for _, p := range payments {
		if p.DatePaiement.IsZero() {
			continue
		}
		if i, ok := index[p.DatePaiement.Format("2006-01")]; ok {
			series[i].Amount = series[i].Amount.Add(p.MontantPaye)
		}
	}
	return series
}

func inDateRange(d domain.Date, from, to domain.Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

// daysBetween counts whole days from a to b, negative when b precedes a.
func daysBetween(a, b domain.Date) int {
	return int(b.Sub(a.Time) / (24 * time.Hour))
}
