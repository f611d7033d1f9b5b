// file: internals/features/roster/service/memstore_test.go
package service

import "strings"

// memStore is an in-memory Store for pipeline tests. Writes land in a
// staging map during Transaction and merge on commit, so dry-run purity
// and rollback behavior can be asserted without a database.
type memStore struct {
	offices map[string]uint // lower(name) -> id
	ids     map[uint]bool
	rows    map[NaturalKey]*RosterRow

	resolveCalls int
	upsertCalls  int
}

func newMemStore() *memStore {
	return &memStore{
		offices: map[string]uint{},
		ids:     map[uint]bool{},
		rows:    map[NaturalKey]*RosterRow{},
	}
}

func (m *memStore) addOffice(id uint, name string) {
	m.offices[strings.ToLower(name)] = id
	m.ids[id] = true
}

func (m *memStore) ResolveOffice(ref OfficeRef) (uint, bool, error) {
	m.resolveCalls++
	if ref.ByID() {
		return ref.ID, m.ids[ref.ID], nil
	}
	id, ok := m.offices[strings.ToLower(ref.Name)]
	return id, ok, nil
}

func (m *memStore) Exists(k NaturalKey) (bool, error) {
	_, ok := m.rows[k]
	return ok, nil
}

func (m *memStore) Upsert(row *RosterRow) (bool, error) {
	m.upsertCalls++
	k := row.Key()
	_, exists := m.rows[k]
	cp := *row
	m.rows[k] = &cp
	return !exists, nil
}

func (m *memStore) Transaction(fn func(Store) error) error {
	return fn(m)
}
