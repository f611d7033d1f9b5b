// file: internals/features/roster/service/reconcile.go
package service

/* =======================================================
   Reconciliation: idempotent upsert on the natural key,
   classified as created/updated. Dry-run classifies from
   an existence lookup and never writes.
   ======================================================= */

type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeUpdated
	OutcomeWouldCreate
	OutcomeWouldUpdate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeWouldCreate:
		return "would_create"
	case OutcomeWouldUpdate:
		return "would_update"
	}
	return "unknown"
}

// Reconcile performs the upsert (or its dry-run classification) for one
// valid row. Storage failures surface as errors for the caller to record
// as row-level failures; they never abort the batch.
func Reconcile(st Store, row *RosterRow, dryRun bool) (Outcome, error) {
	if dryRun {
		exists, err := st.Exists(row.Key())
		if err != nil {
			return 0, err
		}
		if exists {
			return OutcomeWouldUpdate, nil
		}
		return OutcomeWouldCreate, nil
	}

	created, err := st.Upsert(row)
	if err != nil {
		return 0, err
	}
	if created {
		return OutcomeCreated, nil
	}
	return OutcomeUpdated, nil
}
