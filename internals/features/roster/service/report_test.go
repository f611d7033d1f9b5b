// file: internals/features/roster/service/report_test.go
package service

import (
	"fmt"
	"strings"
	"testing"
)

func TestReportCapsErrorDetails(t *testing.T) {
	rep := newReport(false)
	total := ErrorDetailCap + 5
	for i := 0; i < total; i++ {
		rep.fail(rowErr(i+2, KindMissingField, "row %d bad", i+2))
	}
	rep.finalize()

	if rep.Failed != total {
		t.Errorf("Failed = %d, want uncapped %d", rep.Failed, total)
	}
	if len(rep.Errors) != ErrorDetailCap+1 {
		t.Fatalf("len(Errors) = %d, want cap + marker = %d", len(rep.Errors), ErrorDetailCap+1)
	}
	last := rep.Errors[len(rep.Errors)-1]
	if !strings.Contains(last.Error, fmt.Sprintf("and %d more", 5)) {
		t.Errorf("marker = %q, want overflow count 5", last.Error)
	}
}

func TestReportUnderCapIsUntouched(t *testing.T) {
	rep := newReport(false)
	for i := 0; i < ErrorDetailCap; i++ {
		rep.fail(rowErr(i+2, KindBadCell, "bad"))
	}
	rep.finalize()
	if len(rep.Errors) != ErrorDetailCap {
		t.Errorf("len(Errors) = %d, want %d with no marker", len(rep.Errors), ErrorDetailCap)
	}
}

func TestReportCountsDryRunOutcomes(t *testing.T) {
	rep := newReport(true)
	rep.count(OutcomeWouldCreate)
	rep.count(OutcomeWouldUpdate)
	rep.count(OutcomeWouldUpdate)
	if rep.Created != 1 || rep.Updated != 2 {
		t.Errorf("report = %+v, want created=1 updated=2", rep)
	}
}
