package filter

import (
	"github.com/shopspring/decimal"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// OwnerCriteria selects owners by free-text search on name, phone or
// address.
type OwnerCriteria struct {
	Search string
}

// Match reports whether o satisfies the criteria.
func (c OwnerCriteria) Match(o domain.Owner) bool {
	return containsFold(c.Search, o.Nom, o.Telephone, o.Adresse)
}

// Apply filters owners by the criteria.
func (c OwnerCriteria) Apply(owners []domain.Owner) []domain.Owner {
	return Apply(owners, c.Match)
}

// TenantCriteria selects tenants by free-text search and kind.
type TenantCriteria struct {
	Search string
	Kind   domain.TenantKind
}

// Match reports whether t satisfies every supplied criterion.
func (c TenantCriteria) Match(t domain.Tenant) bool {
	if !containsFold(c.Search, t.Nom, t.Telephone, t.Email) {
		return false
	}
	return c.Kind == "" || t.Kind == c.Kind
}

// Apply filters tenants by the criteria.
func (c TenantCriteria) Apply(tenants []domain.Tenant) []domain.Tenant {
	return Apply(tenants, c.Match)
}

// UnitCriteria selects units. The zero value matches every unit.
type UnitCriteria struct {
	// Search matches address, unit number, owner name or description.
	Search string
	// Status and Type are exact matches; empty disables them.
	Status domain.UnitStatus
	Type   domain.UnitType
	// OwnerID scopes to one owner; zero disables it.
	OwnerID int64
	// Inclusive independent bounds; nil disables a bound.
	MinSurface, MaxSurface *float64
	MinPieces, MaxPieces   *int
}

// Match reports whether u satisfies every supplied criterion.
func (c UnitCriteria) Match(u domain.Unit) bool {
	if !containsFold(c.Search, u.Adresse, u.NumeroBien, u.OwnerNom, u.Description) {
		return false
	}
	if c.Status != "" && u.Status != c.Status {
		return false
	}
	if c.Type != "" && u.Type != c.Type {
		return false
	}
	if c.OwnerID != 0 && u.OwnerID != c.OwnerID {
		return false
	}
	if !inFloatRange(u.Surface, c.MinSurface, c.MaxSurface) {
		return false
	}
	if !inIntRange(u.NombrePieces, c.MinPieces, c.MaxPieces) {
		return false
	}
	return true
}

// Apply filters units by the criteria.
func (c UnitCriteria) Apply(units []domain.Unit) []domain.Unit {
	return Apply(units, c.Match)
}

// LeaseCriteria selects leases. The zero value matches every lease.
type LeaseCriteria struct {
	// Search matches tenant name, unit address or owner name.
	Search string
	// Status is an exact match; empty disables it.
	Status domain.LeaseStatus
	// Archived selects by archive flag; nil disables it.
	Archived *bool
	// TenantID and UnitID scope to one relation; zero disables them.
	TenantID int64
	UnitID   int64
	// Start-date bounds, inclusive and independent.
	From, To domain.Date
}

// Match reports whether l satisfies every supplied criterion.
func (c LeaseCriteria) Match(l domain.Lease) bool {
	if !containsFold(c.Search, l.TenantNom, l.UnitAdresse, l.OwnerNom) {
		return false
	}
	if c.Status != "" && l.Status != c.Status {
		return false
	}
	if c.Archived != nil && l.Archive.Bool() != *c.Archived {
		return false
	}
	if c.TenantID != 0 && l.TenantID != c.TenantID {
		return false
	}
	if c.UnitID != 0 && l.UnitID != c.UnitID {
		return false
	}
	return inDateRange(l.DateDebut, c.From, c.To)
}

// Apply filters leases by the criteria.
func (c LeaseCriteria) Apply(leases []domain.Lease) []domain.Lease {
	return Apply(leases, c.Match)
}

// PaymentCriteria selects payments. The zero value matches every payment.
type PaymentCriteria struct {
	// Search matches tenant name, unit address or payment reference.
	Search string
	// Mode is an exact payment-method match; empty disables it.
	Mode string
	// LeaseID scopes to one lease; zero disables it.
	LeaseID int64
	// MonthKey scopes to one covered month ("2006-01"); empty disables it.
	MonthKey string
	// Year scopes the covered month to a year; zero disables it.
	Year int
	// Payment-date bounds, inclusive and independent.
	From, To domain.Date
	// Amount bounds, inclusive and independent; nil disables a bound.
	MinAmount, MaxAmount *decimal.Decimal
}

// Match reports whether p satisfies every supplied criterion.
func (c PaymentCriteria) Match(p domain.Payment) bool {
	if !containsFold(c.Search, p.TenantNom, p.UnitAdresse, p.Reference) {
		return false
	}
	if c.Mode != "" && p.ModePaiement != c.Mode {
		return false
	}
	if c.LeaseID != 0 && p.LeaseID != c.LeaseID {
		return false
	}
	if c.MonthKey != "" && p.MoisConcerne.MonthKey() != c.MonthKey {
		return false
	}
	if c.Year != 0 && p.MoisConcerne.Year() != c.Year {
		return false
	}
	if !inDateRange(p.DatePaiement, c.From, c.To) {
		return false
	}
	return inDecimalRange(p.MontantPaye, c.MinAmount, c.MaxAmount)
}

// Apply filters payments by the criteria.
func (c PaymentCriteria) Apply(payments []domain.Payment) []domain.Payment {
	return Apply(payments, c.Match)
}
