// file: internals/features/roster/service/record.go
package service

import "strings"

/* =======================================================
   Interactive single-record path. Shares normalize →
   validate → reconcile with the bulk pipeline so the API
   and the upload can never drift apart.
   ======================================================= */

// RecordInput is one roster record as submitted through the JSON API.
// Office accepts a numeric id or a name, like the spreadsheet cell.
type RecordInput struct {
	EmployeeName string `json:"employee_name"`
	Office       string `json:"office"`
	StartDate    string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      string `json:"end_date,omitempty"`
	StartTime    string `json:"start_time,omitempty"` // HH:mm or HH:mm:ss
	EndTime      string `json:"end_time,omitempty"`
	Shift        string `json:"shift"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ReconcileRecord runs one record through the row pipeline. A *RowError
// (returned as error) means the record was rejected; other errors are
// storage failures.
func (imp *Importer) ReconcileRecord(in RecordInput, dryRun bool) (Outcome, error) {
	raw := map[string]string{
		fieldEmployeeName: strings.TrimSpace(in.EmployeeName),
		fieldOffice:       strings.TrimSpace(in.Office),
		fieldStartDate:    strings.TrimSpace(in.StartDate),
		fieldEndDate:      strings.TrimSpace(in.EndDate),
		fieldStartTime:    strings.TrimSpace(in.StartTime),
		fieldEndTime:      strings.TrimSpace(in.EndTime),
		fieldShift:        strings.TrimSpace(in.Shift),
		fieldPhoneNumber:  strings.TrimSpace(in.PhoneNumber),
	}

	row, rerr := normalizeRow(imp.Store, raw, 0)
	if rerr == nil {
		rerr = validateRow(row, imp.Phone)
	}
	if rerr != nil {
		return 0, rerr
	}
	if s := strings.TrimSpace(in.Status); s != "" {
		row.Status = s
	}
	return Reconcile(imp.Store, row, dryRun)
}
