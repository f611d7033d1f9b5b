// file: internals/features/roster/service/normalize_test.go
package service

import (
	"testing"
	"time"
)

func TestParseDateCell(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026-01-05", "2026-01-05", true},
		{"2026/01/05", "2026-01-05", true},
		{"1/5/2026", "2026-01-05", true},
		{"01-05-26", "2026-01-05", true},
		{"5-Jan-26", "2026-01-05", true},
		{"46027", "2026-01-05", true}, // date serial
		{"not a date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := parseDateCell(tc.in)
		if ok != tc.ok {
			t.Errorf("parseDateCell(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tc.want {
			t.Errorf("parseDateCell(%q) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestParseClockCell(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:00", "09:00:00", true},
		{"09:00:30", "09:00:30", true},
		{"5:30 PM", "17:30:00", true},
		{"5:30pm", "17:30:00", true},
		{"0.375", "09:00:00", true}, // fraction of a day
		{"0.708333333333333", "17:00:00", true},
		{"noon", "", false},
	}
	for _, tc := range cases {
		got, ok := parseClockCell(tc.in)
		if ok != tc.ok {
			t.Errorf("parseClockCell(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got.Format("15:04:05") != tc.want {
			t.Errorf("parseClockCell(%q) = %s, want %s", tc.in, got.Format("15:04:05"), tc.want)
		}
	}
}

func TestParseOfficeRef(t *testing.T) {
	if ref := parseOfficeRef("42"); !ref.ByID() || ref.ID != 42 {
		t.Errorf("parseOfficeRef(42) = %+v, want id 42", ref)
	}
	if ref := parseOfficeRef("Records Office"); ref.ByID() || ref.Name != "Records Office" {
		t.Errorf("parseOfficeRef(name) = %+v, want name ref", ref)
	}
	// zero is not a valid id, treat it as a (strange) name
	if ref := parseOfficeRef("0"); ref.ByID() {
		t.Errorf("parseOfficeRef(0) = %+v, want name ref", ref)
	}
}

func TestNormalizeRowDefaultsTimes(t *testing.T) {
	st := newTestStore()
	raw := map[string]string{
		fieldEmployeeName: "Sita Sharma",
		fieldOffice:       "Records Office",
		fieldShift:        "morning",
	}
	row, rerr := normalizeRow(st, raw, 2)
	if rerr != nil {
		t.Fatalf("normalizeRow: %v", rerr)
	}
	if row.StartTime.Format("15:04:05") != "09:00:00" || row.EndTime.Format("15:04:05") != "17:00:00" {
		t.Errorf("default times = %s..%s, want 09:00:00..17:00:00",
			row.StartTime.Format("15:04:05"), row.EndTime.Format("15:04:05"))
	}
	if row.Status != "pending" {
		t.Errorf("status = %q, want pending", row.Status)
	}
	if row.OfficeID != 1 {
		t.Errorf("office id = %d, want 1", row.OfficeID)
	}
}

func TestNormalizeRowOfficeByNameIsCaseInsensitive(t *testing.T) {
	st := newTestStore()
	raw := map[string]string{
		fieldEmployeeName: "Sita Sharma",
		fieldOffice:       "records office",
		fieldShift:        "morning",
	}
	row, rerr := normalizeRow(st, raw, 2)
	if rerr != nil {
		t.Fatalf("normalizeRow: %v", rerr)
	}
	if row.OfficeID != 1 {
		t.Errorf("office id = %d, want 1", row.OfficeID)
	}
}

func TestNormalizeRowBadCellCarriesRowNumber(t *testing.T) {
	st := newTestStore()
	raw := map[string]string{
		fieldEmployeeName: "Sita Sharma",
		fieldOffice:       "1",
		fieldShift:        "morning",
		fieldStartDate:    "someday",
	}
	_, rerr := normalizeRow(st, raw, 7)
	if rerr == nil {
		t.Fatal("want a row error for an unparseable date")
	}
	if rerr.Row != 7 || rerr.Kind != KindBadCell {
		t.Errorf("rerr = %+v, want row 7 kind BadCell", rerr)
	}
}

func TestRosterRowKeyCanonicalizes(t *testing.T) {
	d := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	row := RosterRow{
		EmployeeName: "Sita Sharma",
		OfficeID:     1,
		StartDate:    &d,
		StartTime:    mustClock("09:00:00"),
		EndTime:      mustClock("17:00:00"),
		Shift:        "morning",
	}
	k := row.Key()
	if k.StartDate != "2026-01-05" || k.EndDate != "" {
		t.Errorf("key dates = %q/%q", k.StartDate, k.EndDate)
	}
	if k.StartTime != "09:00:00" || k.EndTime != "17:00:00" {
		t.Errorf("key times = %q/%q", k.StartTime, k.EndTime)
	}

	// same business fields, different phone → same key
	other := row
	other.PhoneNumber = "+9779841000001"
	if other.Key() != k {
		t.Error("phone number must not participate in the natural key")
	}
}
