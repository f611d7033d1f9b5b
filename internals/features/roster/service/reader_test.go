// file: internals/features/roster/service/reader_test.go
package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWorkbookLegacyXLS(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "roster.xls"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	rows, err := ReadWorkbook(data, "roster.xls")
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}
	if mm := CheckHeaders(rows[0]); mm != nil {
		t.Fatalf("fixture header rejected: %v", mm)
	}
	found := false
	for _, cell := range rows[1] {
		if cell == "Sita Sharma" {
			found = true
		}
	}
	if !found {
		t.Fatalf("row 2 = %v, want the employee name cell", rows[1])
	}
}

func TestLegacyXLSRunsThroughImporter(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "roster.xls"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	st := newTestStore()
	rep, err := NewImporter(st).Run(data, "roster.xls", false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Created != 2 || rep.Failed != 0 {
		t.Fatalf("report = %+v, want created=2 failed=0", rep)
	}
}

func TestReadWorkbookTruncatedOLE(t *testing.T) {
	// valid compound-file magic, garbage after it
	blob := append(append([]byte{}, oleMagic...), []byte("truncated")...)
	_, err := ReadWorkbook(blob, "roster.xls")
	if !errors.Is(err, ErrUnreadableFile) {
		t.Fatalf("err = %v, want ErrUnreadableFile", err)
	}
}

func TestReadWorkbookUnknownExtension(t *testing.T) {
	_, err := ReadWorkbook([]byte("plain text"), "roster.csv")
	if !errors.Is(err, ErrUnreadableFile) {
		t.Fatalf("err = %v, want ErrUnreadableFile", err)
	}
}
