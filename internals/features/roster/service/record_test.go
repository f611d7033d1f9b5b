// file: internals/features/roster/service/record_test.go
package service

import (
	"errors"
	"testing"
)

func TestReconcileRecordCreateThenUpdate(t *testing.T) {
	st := newTestStore()
	imp := NewImporter(st)

	in := RecordInput{
		EmployeeName: "Sita Sharma",
		Office:       "Records Office",
		StartDate:    "2026-01-05",
		StartTime:    "09:00",
		EndTime:      "17:00",
		Shift:        "morning",
	}

	out, err := imp.ReconcileRecord(in, false)
	if err != nil {
		t.Fatalf("first reconcile: %v", err)
	}
	if out != OutcomeCreated {
		t.Fatalf("outcome = %s, want created", out)
	}

	in.PhoneNumber = "+9779841000001"
	in.Status = "confirmed"
	out, err = imp.ReconcileRecord(in, false)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if out != OutcomeUpdated {
		t.Fatalf("outcome = %s, want updated", out)
	}
	if len(st.rows) != 1 {
		t.Fatalf("store holds %d rows, want 1", len(st.rows))
	}
	for _, row := range st.rows {
		if row.Status != "confirmed" || row.PhoneNumber != "+9779841000001" {
			t.Fatalf("stored row = %+v, want updated status and phone", row)
		}
	}
}

func TestReconcileRecordRejectsUnknownOffice(t *testing.T) {
	st := newTestStore()
	imp := NewImporter(st)

	_, err := imp.ReconcileRecord(RecordInput{
		EmployeeName: "Sita Sharma",
		Office:       "No Such Office",
		Shift:        "morning",
	}, false)

	var rerr *RowError
	if !errors.As(err, &rerr) || rerr.Kind != KindOfficeNotFound {
		t.Fatalf("err = %v, want OfficeNotFound row error", err)
	}
}

func TestReconcileRecordDryRun(t *testing.T) {
	st := newTestStore()
	imp := NewImporter(st)

	out, err := imp.ReconcileRecord(RecordInput{
		EmployeeName: "Sita Sharma",
		Office:       "1",
		Shift:        "morning",
	}, true)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if out != OutcomeWouldCreate {
		t.Fatalf("outcome = %s, want would_create", out)
	}
	if len(st.rows) != 0 || st.upsertCalls != 0 {
		t.Fatal("dry run must not write")
	}
}
