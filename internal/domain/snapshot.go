package domain

// Snapshot is one fetch round of the full collections. All derived
// computation (dashboard metrics, arrears, rankings) works on a single
// snapshot so its outputs are internally consistent; two snapshots taken
// in quick succession carry no cross-round guarantee.
type Snapshot struct {
	Owners   []Owner
	Tenants  []Tenant
	Units    []Unit
	Leases   []Lease
	Payments []Payment
}

// UnitByID indexes the snapshot's units.
func (s Snapshot) UnitByID() map[int64]Unit {
	m := make(map[int64]Unit, len(s.Units))
	for _, u := range s.Units {
		m[u.ID] = u
	}
	return m
}

// OwnerByID indexes the snapshot's owners.
func (s Snapshot) OwnerByID() map[int64]Owner {
	m := make(map[int64]Owner, len(s.Owners))
	for _, o := range s.Owners {
		m[o.ID] = o
	}
	return m
}
