// file: internals/features/roster/service/normalize.go
package service

import (
	"math"
	"strconv"
	"strings"
	"time"
)

/* =======================================================
   Row normalizer: header label → canonical field, trim,
   parse date/time cells, resolve the office reference.
   ======================================================= */

// OfficeRef is the tagged office reference found in a cell: a numeric id or
// a free-text name. Resolved exactly once, at the normalization boundary.
type OfficeRef struct {
	ID   uint
	Name string
}

func (r OfficeRef) ByID() bool { return r.ID != 0 }

func parseOfficeRef(s string) OfficeRef {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil && n > 0 {
		return OfficeRef{ID: uint(n)}
	}
	return OfficeRef{Name: s}
}

// mapRow turns one cell slice into canonical-field → trimmed-value, using the
// (already accepted) file header to key each column. Short rows pad with "".
func mapRow(header []string, cells []string) map[string]string {
	raw := make(map[string]string, len(headerField))
	for i, h := range header {
		field, ok := headerField[strings.TrimSpace(h)]
		if !ok {
			continue
		}
		if i < len(cells) {
			raw[field] = strings.TrimSpace(cells[i])
		} else {
			raw[field] = ""
		}
	}
	return raw
}

func blankRow(raw map[string]string) bool {
	for _, v := range raw {
		if v != "" {
			return false
		}
	}
	return true
}

/* =======================================================
   Date / time cell parsing. Sheets hand us either ISO
   strings, locale renderings, or raw date serials.
   ======================================================= */

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01-02-06", // excelize default short date rendering
	"1/2/2006",
	"1/2/06",
	"02-Jan-06",
	"2-Jan-06",
	"2-Jan-2006",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04:05 PM",
	"3:04PM",
}

// excelEpoch is day zero of the 1900 date system (with the Lotus leap bug
// folded in, hence Dec 30 not 31).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func parseDateCell(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	// date serial
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		days := int(serial)
		return excelEpoch.AddDate(0, 0, days), true
	}
	return time.Time{}, false
}

func parseClockCell(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t, true
		}
	}
	// fraction-of-day serial (0.375 = 09:00)
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 0 {
		frac := serial - math.Floor(serial)
		secs := int(math.Round(frac * 24 * 60 * 60))
		return time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(secs) * time.Second), true
	}
	return time.Time{}, false
}

var (
	defaultStartTime = mustClock("09:00:00")
	defaultEndTime   = mustClock("17:00:00")
)

func mustClock(s string) time.Time {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

// normalizeRow builds a RosterRow from the raw cell map. Cell-level parse
// failures and unknown offices are row errors, not batch errors.
func normalizeRow(st Store, raw map[string]string, line int) (*RosterRow, *RowError) {
	row := &RosterRow{
		Line:         line,
		EmployeeName: raw[fieldEmployeeName],
		Shift:        raw[fieldShift],
		PhoneNumber:  raw[fieldPhoneNumber],
		StartTime:    defaultStartTime,
		EndTime:      defaultEndTime,
		Status:       "pending",
	}

	if s := raw[fieldStartDate]; s != "" {
		d, ok := parseDateCell(s)
		if !ok {
			return nil, rowErr(line, KindBadCell, "Start Date: cannot parse %q", s)
		}
		row.StartDate = &d
	}
	if s := raw[fieldEndDate]; s != "" {
		d, ok := parseDateCell(s)
		if !ok {
			return nil, rowErr(line, KindBadCell, "End Date: cannot parse %q", s)
		}
		row.EndDate = &d
	}
	if s := raw[fieldStartTime]; s != "" {
		t, ok := parseClockCell(s)
		if !ok {
			return nil, rowErr(line, KindBadCell, "Start Time: cannot parse %q", s)
		}
		row.StartTime = t
	}
	if s := raw[fieldEndTime]; s != "" {
		t, ok := parseClockCell(s)
		if !ok {
			return nil, rowErr(line, KindBadCell, "End Time: cannot parse %q", s)
		}
		row.EndTime = t
	}

	if s := raw[fieldOffice]; s != "" {
		ref := parseOfficeRef(s)
		id, found, err := st.ResolveOffice(ref)
		if err != nil {
			return nil, rowErr(line, KindReconciliationFailed, "Office lookup failed: %v", err)
		}
		if !found {
			return nil, rowErr(line, KindOfficeNotFound, "Office %q not found", s)
		}
		row.OfficeID = id
	}

	return row, nil
}
