// file: internals/features/roster/service/validate.go
package service

import (
	"regexp"
	"strings"
)

/* =======================================================
   Per-row business rules, applied in order and
   short-circuiting on the first failure.
   ======================================================= */

// PhonePolicy decides what happens to a malformed phone number.
type PhonePolicy int

const (
	// PhoneSanitize clears the field and keeps the row. This matches the
	// historical upload behavior operators rely on.
	PhoneSanitize PhonePolicy = iota
	// PhoneReject fails the row instead.
	PhoneReject
)

// Nepal format: +977 followed by exactly 10 digits.
var phonePattern = regexp.MustCompile(`^\+977\d{10}$`)

// ValidRosterPhone reports whether s is an acceptable phone number.
func ValidRosterPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// validateRow checks a normalized row. Rule order: required fields, date
// ordering, time ordering, phone policy. May mutate row.PhoneNumber under
// PhoneSanitize.
func validateRow(row *RosterRow, phone PhonePolicy) *RowError {
	var missing []string
	if strings.TrimSpace(row.EmployeeName) == "" {
		missing = append(missing, "Employee Name")
	}
	if row.OfficeID == 0 {
		missing = append(missing, "Office")
	}
	if strings.TrimSpace(row.Shift) == "" {
		missing = append(missing, "Shift")
	}
	if len(missing) > 0 {
		return rowErr(row.Line, KindMissingField, "required field(s) empty: %s", strings.Join(missing, ", "))
	}

	if row.StartDate != nil && row.EndDate != nil && row.EndDate.Before(*row.StartDate) {
		return rowErr(row.Line, KindInvalidDateRange, "End Date %s is before Start Date %s",
			row.EndDate.Format("2006-01-02"), row.StartDate.Format("2006-01-02"))
	}

	if row.SingleDay() && !row.EndTime.After(row.StartTime) {
		return rowErr(row.Line, KindInvalidTimeRange, "End Time %s must be after Start Time %s on a single-day span",
			row.EndTime.Format("15:04:05"), row.StartTime.Format("15:04:05"))
	}

	if row.PhoneNumber != "" && !ValidRosterPhone(row.PhoneNumber) {
		switch phone {
		case PhoneReject:
			return rowErr(row.Line, KindInvalidPhone, "Phone Number %q must be +977 followed by 10 digits", row.PhoneNumber)
		default:
			row.PhoneNumber = "" // best-effort sanitization, not a row failure
		}
	}

	return nil
}
