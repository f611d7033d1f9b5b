// file: internals/features/roster/service/headers_test.go
package service

import "testing"

func TestCheckHeadersAcceptsCanonicalSet(t *testing.T) {
	if mm := CheckHeaders(RosterColumns); mm != nil {
		t.Fatalf("canonical header rejected: %v", mm)
	}
}

func TestCheckHeadersIgnoresOrderAndPadding(t *testing.T) {
	shuffled := []string{
		" Phone Number ", "Office", "Employee Name", "Shift",
		"End Time", "Start Time", "End Date", "Start Date",
	}
	if mm := CheckHeaders(shuffled); mm != nil {
		t.Fatalf("reordered/padded header rejected: %v", mm)
	}
}

func TestCheckHeadersReportsBothDirections(t *testing.T) {
	found := []string{
		"Start Date", "End Date", "Start Time", "End Time",
		"Shift", "Employee Name", "Branch", "Phone Number",
	}
	mm := CheckHeaders(found)
	if mm == nil {
		t.Fatal("want mismatch")
	}
	if len(mm.Missing) != 1 || mm.Missing[0] != "Office" {
		t.Errorf("missing = %v, want [Office]", mm.Missing)
	}
	if len(mm.Unexpected) != 1 || mm.Unexpected[0] != "Branch" {
		t.Errorf("unexpected = %v, want [Branch]", mm.Unexpected)
	}
}

func TestCheckHeadersEmptyFile(t *testing.T) {
	mm := CheckHeaders(nil)
	if mm == nil {
		t.Fatal("empty header must be rejected")
	}
	if len(mm.Missing) != len(RosterColumns) {
		t.Errorf("missing = %v, want all columns", mm.Missing)
	}
}
