// file: internals/features/roster/service/errors.go
package service

import "fmt"

/* =======================================================
   Row-level error taxonomy. Row errors are captured into
   the report, never thrown: a bad row skips, the batch
   continues.
   ======================================================= */

type ErrorKind string

const (
	KindMissingField         ErrorKind = "MissingField"
	KindBadCell              ErrorKind = "BadCell"
	KindInvalidDateRange     ErrorKind = "InvalidDateRange"
	KindInvalidTimeRange     ErrorKind = "InvalidTimeRange"
	KindOfficeNotFound       ErrorKind = "OfficeNotFound"
	KindInvalidPhone         ErrorKind = "InvalidPhone"
	KindReconciliationFailed ErrorKind = "ReconciliationFailed"
)

type RowError struct {
	Row  int
	Kind ErrorKind
	Msg  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func rowErr(row int, kind ErrorKind, format string, args ...interface{}) *RowError {
	return &RowError{Row: row, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
