// file: internals/features/roster/service/headers.go
package service

import (
	"fmt"
	"strings"
)

/* =======================================================
   Single canonical header schema, consumed by every
   upload entry point. Compared as a set: both missing and
   unexpected columns are reported together so the operator
   can fix the whole file in one pass.
   ======================================================= */

// RosterColumns is the canonical ordered column list for roster uploads.
var RosterColumns = []string{
	"Start Date",
	"End Date",
	"Start Time",
	"End Time",
	"Shift",
	"Employee Name",
	"Office",
	"Phone Number",
}

// canonical field names
const (
	fieldStartDate    = "start_date"
	fieldEndDate      = "end_date"
	fieldStartTime    = "start_time"
	fieldEndTime      = "end_time"
	fieldShift        = "shift"
	fieldEmployeeName = "employee_name"
	fieldOffice       = "office"
	fieldPhoneNumber  = "phone_number"
)

// headerField maps a file column header to its canonical field name.
var headerField = map[string]string{
	"Start Date":    fieldStartDate,
	"End Date":      fieldEndDate,
	"Start Time":    fieldStartTime,
	"End Time":      fieldEndTime,
	"Shift":         fieldShift,
	"Employee Name": fieldEmployeeName,
	"Office":        fieldOffice,
	"Phone Number":  fieldPhoneNumber,
}

// HeaderMismatch is the batch-fatal header rejection. Both lists are always
// populated together (either may be empty, never both).
type HeaderMismatch struct {
	Missing    []string `json:"missing"`
	Unexpected []string `json:"unexpected"`
	Expected   []string `json:"expected_exact"`
}

func (m *HeaderMismatch) Error() string {
	var parts []string
	if len(m.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns: %s", strings.Join(m.Missing, ", ")))
	}
	if len(m.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected columns: %s", strings.Join(m.Unexpected, ", ")))
	}
	return strings.Join(parts, " | ")
}

// CheckHeaders trims the found headers and compares them as a set against
// RosterColumns. Returns nil when the file header is acceptable.
func CheckHeaders(found []string) *HeaderMismatch {
	seen := make(map[string]bool, len(found))
	for _, h := range found {
		h = strings.TrimSpace(h)
		if h != "" {
			seen[h] = true
		}
	}

	var missing, unexpected []string
	for _, want := range RosterColumns {
		if !seen[want] {
			missing = append(missing, want)
		}
	}
	for _, h := range found {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := headerField[h]; !ok {
			unexpected = append(unexpected, h)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}
	return &HeaderMismatch{
		Missing:    missing,
		Unexpected: unexpected,
		Expected:   RosterColumns,
	}
}
