// file: internals/features/roster/service/report.go
package service

import "fmt"

/* =======================================================
   Batch report aggregation. Counts are never capped; the
   error detail list is capped with a trailing marker so
   the response stays bounded.
   ======================================================= */

// ErrorDetailCap bounds the number of per-row error details in a response.
const ErrorDetailCap = 10

type RowIssue struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type Report struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Failed  int        `json:"failed"`
	Errors  []RowIssue `json:"errors"`
	DryRun  bool       `json:"dry_run"`
}

func newReport(dryRun bool) *Report {
	return &Report{DryRun: dryRun, Errors: []RowIssue{}}
}

func (r *Report) count(o Outcome) {
	switch o {
	case OutcomeCreated, OutcomeWouldCreate:
		r.Created++
	case OutcomeUpdated, OutcomeWouldUpdate:
		r.Updated++
	}
}

func (r *Report) fail(e *RowError) {
	r.Failed++
	r.Errors = append(r.Errors, RowIssue{Row: e.Row, Error: e.Error()})
}

// finalize caps the error list, appending an "and N more" marker when rows
// beyond the cap failed. Failed keeps the uncapped count.
func (r *Report) finalize() {
	if len(r.Errors) <= ErrorDetailCap {
		return
	}
	over := len(r.Errors) - ErrorDetailCap
	r.Errors = append(r.Errors[:ErrorDetailCap], RowIssue{
		Error: fmt.Sprintf("and %d more row(s) failed", over),
	})
}
