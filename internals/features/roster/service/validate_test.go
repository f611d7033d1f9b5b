// file: internals/features/roster/service/validate_test.go
package service

import (
	"strings"
	"testing"
	"time"
)

func validRow(line int) *RosterRow {
	d := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return &RosterRow{
		Line:         line,
		EmployeeName: "Sita Sharma",
		OfficeID:     1,
		StartDate:    &d,
		StartTime:    mustClock("09:00:00"),
		EndTime:      mustClock("17:00:00"),
		Shift:        "morning",
		Status:       "pending",
	}
}

func TestValidRosterPhone(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"+9779841000001", true},
		{"+977984100000", false},   // 9 digits
		{"+97798410000012", false}, // 11 digits
		{"9779841000001", false},   // no plus
		{"+1559841000001", false},  // wrong country code
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidRosterPhone(tc.in); got != tc.ok {
			t.Errorf("ValidRosterPhone(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestValidateRowReportsAllMissingFieldsTogether(t *testing.T) {
	row := validRow(4)
	row.EmployeeName = " "
	row.OfficeID = 0
	row.Shift = ""

	rerr := validateRow(row, PhoneSanitize)
	if rerr == nil || rerr.Kind != KindMissingField {
		t.Fatalf("rerr = %+v, want MissingField", rerr)
	}
	for _, want := range []string{"Employee Name", "Office", "Shift"} {
		if !strings.Contains(rerr.Msg, want) {
			t.Errorf("message %q should name %s", rerr.Msg, want)
		}
	}
}

func TestValidateRowDateOrdering(t *testing.T) {
	row := validRow(4)
	end := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	row.EndDate = &end

	rerr := validateRow(row, PhoneSanitize)
	if rerr == nil || rerr.Kind != KindInvalidDateRange {
		t.Fatalf("rerr = %+v, want InvalidDateRange", rerr)
	}
}

func TestValidateRowTimeOrderingOnSingleDay(t *testing.T) {
	row := validRow(4)
	row.StartTime = mustClock("17:00:00")
	row.EndTime = mustClock("09:00:00")

	rerr := validateRow(row, PhoneSanitize)
	if rerr == nil || rerr.Kind != KindInvalidTimeRange {
		t.Fatalf("rerr = %+v, want InvalidTimeRange", rerr)
	}

	// a multi-day span may legitimately end earlier in the day (night shift)
	end := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	row.EndDate = &end
	if rerr := validateRow(row, PhoneSanitize); rerr != nil {
		t.Fatalf("multi-day span rejected: %v", rerr)
	}
}

func TestValidateRowMissingFieldsWinOverRangeChecks(t *testing.T) {
	row := validRow(4)
	row.EmployeeName = ""
	end := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	row.EndDate = &end // also a bad date range

	rerr := validateRow(row, PhoneSanitize)
	if rerr == nil || rerr.Kind != KindMissingField {
		t.Fatalf("rerr = %+v, want MissingField reported first", rerr)
	}
}

func TestValidateRowPhonePolicies(t *testing.T) {
	row := validRow(4)
	row.PhoneNumber = "98410"
	if rerr := validateRow(row, PhoneSanitize); rerr != nil {
		t.Fatalf("sanitize policy rejected the row: %v", rerr)
	}
	if row.PhoneNumber != "" {
		t.Errorf("phone = %q after sanitize, want empty", row.PhoneNumber)
	}

	row = validRow(4)
	row.PhoneNumber = "98410"
	rerr := validateRow(row, PhoneReject)
	if rerr == nil || rerr.Kind != KindInvalidPhone {
		t.Fatalf("rerr = %+v, want InvalidPhone under reject policy", rerr)
	}

	row = validRow(4)
	row.PhoneNumber = "+9779841000001"
	if rerr := validateRow(row, PhoneReject); rerr != nil {
		t.Fatalf("valid phone rejected: %v", rerr)
	}
	if row.PhoneNumber != "+9779841000001" {
		t.Errorf("valid phone mutated to %q", row.PhoneNumber)
	}
}
