// file: internals/features/roster/service/importer.go
package service

import "strings"

/* =======================================================
   Batch pipeline:
   Reading → HeaderChecking → RowProcessing → Reporting.
   Failures in the first two stages are batch-fatal;
   row failures are recorded and processing continues.
   ======================================================= */

type Importer struct {
	Store Store
	Phone PhonePolicy
}

func NewImporter(st Store) *Importer {
	return &Importer{Store: st, Phone: PhoneSanitize}
}

// Run ingests one workbook. Batch-fatal conditions come back as an error
// (ErrUnreadableFile or *HeaderMismatch); otherwise the report carries the
// per-row outcome, even when every row failed.
func (imp *Importer) Run(data []byte, filename string, dryRun bool) (*Report, error) {
	// Reading
	rows, err := ReadWorkbook(data, filename)
	if err != nil {
		return nil, err
	}

	// HeaderChecking
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	if mm := CheckHeaders(header); mm != nil {
		return nil, mm
	}

	// RowProcessing
	rep := newReport(dryRun)
	process := func(st Store) error {
		for i, cells := range rows[1:] {
			line := i + 2 // 1-based file rows, header is row 1
			raw := mapRow(header, cells)
			if blankRow(raw) {
				continue
			}

			row, rerr := normalizeRow(st, raw, line)
			if rerr == nil {
				rerr = validateRow(row, imp.Phone)
			}
			if rerr != nil {
				rep.fail(rerr)
				continue
			}

			out, err := Reconcile(st, row, dryRun)
			if err != nil {
				rep.fail(rowErr(line, KindReconciliationFailed, "%s", strings.TrimSpace(err.Error())))
				continue
			}
			rep.count(out)
		}
		return nil
	}

	if dryRun {
		// lookups only, no transaction, nothing to roll back
		if err := process(imp.Store); err != nil {
			return nil, err
		}
	} else {
		// advisory request-level transaction: row failures are captured in
		// the report, successful rows commit together at the end.
		if err := imp.Store.Transaction(process); err != nil {
			return nil, err
		}
	}

	// Reporting
	rep.finalize()
	return rep, nil
}
