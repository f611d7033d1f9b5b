// file: internals/features/roster/service/pipeline_test.go
package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", name, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func headerRow() []string {
	return append([]string{}, RosterColumns...)
}

// one valid data row in canonical column order
func dataRow(startDate, endDate, startTime, endTime, shift, employee, office, phone string) []string {
	return []string{startDate, endDate, startTime, endTime, shift, employee, office, phone}
}

func newTestStore() *memStore {
	st := newMemStore()
	st.addOffice(1, "Records Office")
	st.addOffice(2, "Accounts Office")
	return st
}

func TestImportIsIdempotent(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "2026-01-09", "09:00", "17:00", "morning", "Sita Sharma", "Records Office", "+9779841000001"),
		dataRow("2026-01-05", "2026-01-09", "09:00", "17:00", "night", "Hari Thapa", "2", ""),
	})

	imp := NewImporter(st)
	first, err := imp.Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Created != 2 || first.Updated != 0 || first.Failed != 0 {
		t.Fatalf("first run report = %+v, want created=2 updated=0 failed=0", first)
	}

	second, err := imp.Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Created != 0 || second.Updated != 2 || second.Failed != 0 {
		t.Fatalf("second run report = %+v, want created=0 updated=2 failed=0", second)
	}
	if len(st.rows) != 2 {
		t.Fatalf("store holds %d rows after reimport, want 2", len(st.rows))
	}
}

func TestImportRejectsHeaderMismatch(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		{"Start Date", "End Date", "Begin Time", "End Time", "Shift", "Employee Name", "Office"},
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", ""),
	})

	_, err := NewImporter(st).Run(data, "roster.xlsx", false)
	var mm *HeaderMismatch
	if !errors.As(err, &mm) {
		t.Fatalf("err = %v, want *HeaderMismatch", err)
	}
	wantMissing := []string{"Start Time", "Phone Number"}
	if len(mm.Missing) != len(wantMissing) {
		t.Fatalf("missing = %v, want %v", mm.Missing, wantMissing)
	}
	for i, w := range wantMissing {
		if mm.Missing[i] != w {
			t.Fatalf("missing = %v, want %v", mm.Missing, wantMissing)
		}
	}
	if len(mm.Unexpected) != 1 || mm.Unexpected[0] != "Begin Time" {
		t.Fatalf("unexpected = %v, want [Begin Time]", mm.Unexpected)
	}
	if len(mm.Expected) != len(RosterColumns) {
		t.Fatalf("expected_exact = %v", mm.Expected)
	}
	if st.upsertCalls != 0 {
		t.Fatalf("header rejection must not write, got %d upserts", st.upsertCalls)
	}
}

func TestImportContinuesPastRowFailures(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		headerRow(), // file row 1
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "Records Office", ""), // row 2, ok
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "", "Records Office", ""),            // row 3, no employee
		dataRow("2026-01-05", "", "09:00", "17:00", "day", "Hari Thapa", "No Such Office", ""),      // row 4, bad office
		dataRow("2026-01-09", "2026-01-05", "09:00", "17:00", "day", "Gita Rai", "1", ""),           // row 5, dates reversed
	})

	rep, err := NewImporter(st).Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 1 || rep.Failed != 3 {
		t.Fatalf("report = %+v, want created=1 failed=3", rep)
	}

	wantRows := []int{3, 4, 5}
	if len(rep.Errors) != len(wantRows) {
		t.Fatalf("errors = %+v, want %d entries", rep.Errors, len(wantRows))
	}
	for i, want := range wantRows {
		if rep.Errors[i].Row != want {
			t.Errorf("errors[%d].Row = %d, want %d (%s)", i, rep.Errors[i].Row, want, rep.Errors[i].Error)
		}
	}
	if !strings.Contains(rep.Errors[0].Error, "Employee Name") {
		t.Errorf("row 3 error = %q, want mention of Employee Name", rep.Errors[0].Error)
	}
	if !strings.Contains(rep.Errors[1].Error, "No Such Office") {
		t.Errorf("row 4 error = %q, want mention of the office", rep.Errors[1].Error)
	}
}

func TestDryRunWritesNothing(t *testing.T) {
	st := newTestStore()
	// one existing record the dry run should classify as would_update
	seed := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", ""),
	})
	if _, err := NewImporter(st).Run(seed, "seed.xlsx", false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	writesBefore := st.upsertCalls

	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", ""),
		dataRow("2026-01-06", "", "09:00", "17:00", "day", "Hari Thapa", "1", ""),
	})
	rep, err := NewImporter(st).Run(data, "roster.xlsx", true)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if !rep.DryRun {
		t.Fatal("report must be flagged dry_run")
	}
	if rep.Created != 1 || rep.Updated != 1 {
		t.Fatalf("report = %+v, want created=1 updated=1", rep)
	}
	if st.upsertCalls != writesBefore {
		t.Fatalf("dry run performed %d writes", st.upsertCalls-writesBefore)
	}
	if len(st.rows) != 1 {
		t.Fatalf("store holds %d rows after dry run, want 1", len(st.rows))
	}
}

func TestMalformedPhoneIsSanitizedNotFatal(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", "98410"),
	})

	rep, err := NewImporter(st).Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v, want created=1 failed=0", rep)
	}
	for _, row := range st.rows {
		if row.PhoneNumber != "" {
			t.Fatalf("stored phone = %q, want cleared", row.PhoneNumber)
		}
	}
}

func TestMalformedPhoneRejectedUnderStrictPolicy(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", "98410"),
	})

	imp := NewImporter(st)
	imp.Phone = PhoneReject
	rep, err := imp.Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 0 || rep.Failed != 1 {
		t.Fatalf("report = %+v, want created=0 failed=1", rep)
	}
	if !strings.Contains(rep.Errors[0].Error, string(KindInvalidPhone)) {
		t.Fatalf("error = %q, want %s", rep.Errors[0].Error, KindInvalidPhone)
	}
}

func TestInBatchNaturalKeyCollision(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", "+9779841000001"),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", "+9779841000002"),
	})

	rep, err := NewImporter(st).Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 1 || rep.Updated != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v, want created=1 updated=1 failed=0", rep)
	}
	if len(st.rows) != 1 {
		t.Fatalf("store holds %d rows, want 1", len(st.rows))
	}
	for _, row := range st.rows {
		if row.PhoneNumber != "+9779841000002" {
			t.Fatalf("stored phone = %q, want the later row's value", row.PhoneNumber)
		}
	}
}

// failingStore makes Upsert error for one file row, the way a storage
// constraint violation surfaces when two uploads race on the same key.
type failingStore struct {
	*memStore
	failLine int
}

func (s *failingStore) Upsert(row *RosterRow) (bool, error) {
	if row.Line == s.failLine {
		return false, errors.New("duplicate key value violates unique constraint")
	}
	return s.memStore.Upsert(row)
}

func (s *failingStore) Transaction(fn func(Store) error) error {
	return fn(s)
}

func TestStorageErrorFailsOnlyItsOwnRow(t *testing.T) {
	st := &failingStore{memStore: newTestStore(), failLine: 3}
	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", ""),
		dataRow("2026-01-05", "", "09:00", "17:00", "day", "Hari Thapa", "1", ""),
		dataRow("2026-01-05", "", "09:00", "17:00", "night", "Gita Rai", "1", ""),
	})

	rep, err := NewImporter(st).Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 2 || rep.Failed != 1 {
		t.Fatalf("report = %+v, want created=2 failed=1", rep)
	}
	if rep.Errors[0].Row != 3 || !strings.Contains(rep.Errors[0].Error, string(KindReconciliationFailed)) {
		t.Fatalf("errors[0] = %+v, want ReconciliationFailed on row 3", rep.Errors[0])
	}
	// the rows around the failure still landed
	if len(st.rows) != 2 {
		t.Fatalf("store holds %d rows, want 2", len(st.rows))
	}
}

func TestUnreadableFileIsBatchFatal(t *testing.T) {
	st := newTestStore()
	_, err := NewImporter(st).Run([]byte("this is not a workbook"), "roster.xlsx", false)
	if !errors.Is(err, ErrUnreadableFile) {
		t.Fatalf("err = %v, want ErrUnreadableFile", err)
	}
}

func TestBlankRowsAreSkipped(t *testing.T) {
	st := newTestStore()
	data := buildXLSX(t, [][]string{
		headerRow(),
		dataRow("", "", "", "", "", "", "", ""),
		dataRow("2026-01-05", "", "09:00", "17:00", "morning", "Sita Sharma", "1", ""),
		dataRow("", "", "", "", "", "", "", ""),
	})

	rep, err := NewImporter(st).Run(data, "roster.xlsx", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v, want created=1 failed=0 with blanks skipped", rep)
	}
}
