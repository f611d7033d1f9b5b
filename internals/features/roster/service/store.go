// file: internals/features/roster/service/store.go
package service

import "time"

/* =======================================================
   Collaborator contracts consumed by the import pipeline:
   office lookup, upsert-by-natural-key, transaction scope.
   ======================================================= */

// NaturalKey is the tuple of business fields that identifies a roster
// assignment, independent of the generated primary key. Dates/times are
// canonical strings so keys compare with == and can act as map keys.
type NaturalKey struct {
	EmployeeName string
	OfficeID     uint
	StartDate    string // "2006-01-02", empty when absent
	EndDate      string
	StartTime    string // "15:04:05"
	EndTime      string
	Shift        string
}

// RosterRow is one normalized, validated data row ready for reconciliation.
type RosterRow struct {
	Line int // 1-based row in the file; the header is row 1

	EmployeeName string
	OfficeID     uint
	StartDate    *time.Time
	EndDate      *time.Time
	StartTime    time.Time // time-of-day on the zero date
	EndTime      time.Time
	Shift        string
	PhoneNumber  string
	Status       string
}

func (r *RosterRow) Key() NaturalKey {
	k := NaturalKey{
		EmployeeName: r.EmployeeName,
		OfficeID:     r.OfficeID,
		StartTime:    r.StartTime.Format("15:04:05"),
		EndTime:      r.EndTime.Format("15:04:05"),
		Shift:        r.Shift,
	}
	if r.StartDate != nil {
		k.StartDate = r.StartDate.Format("2006-01-02")
	}
	if r.EndDate != nil {
		k.EndDate = r.EndDate.Format("2006-01-02")
	}
	return k
}

// SingleDay reports whether the row spans at most one calendar day, which is
// when the end time must be strictly after the start time.
func (r *RosterRow) SingleDay() bool {
	if r.EndDate == nil {
		return true
	}
	if r.StartDate == nil {
		return true
	}
	return r.StartDate.Equal(*r.EndDate)
}

// Store is the persistence surface the pipeline needs. The GORM
// implementation lives in gorm_store.go; tests use an in-memory fake.
type Store interface {
	// ResolveOffice maps an office reference to a concrete office id.
	// The bool is false when no such office exists.
	ResolveOffice(ref OfficeRef) (uint, bool, error)

	// Exists reports whether a record with this natural key is persisted.
	Exists(k NaturalKey) (bool, error)

	// Upsert creates the record or overwrites the non-key fields of the
	// existing one. Returns true when a new record was created.
	Upsert(row *RosterRow) (created bool, err error)

	// Transaction runs fn against a transactional view of the store.
	Transaction(fn func(Store) error) error
}
