// file: internals/features/roster/service/reader.go
package service

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrUnreadableFile marks a blob that is not a parseable workbook
// (wrong magic bytes, corrupt container). Batch-fatal.
var ErrUnreadableFile = errors.New("unreadable spreadsheet file")

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}                         // OpenXML container
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1} // legacy compound file
)

const maxXLSRows = 65536

// ReadWorkbook decodes the first sheet of an .xlsx or legacy .xls blob into
// string rows, top to bottom, header row included as rows[0].
func ReadWorkbook(data []byte, filename string) ([][]string, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return readXLSX(data)
	case bytes.HasPrefix(data, oleMagic):
		return readXLS(data)
	}
	// magic bytes unknown; trust the extension as a last resort
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	}
	return nil, ErrUnreadableFile
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadableFile)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	rows := wb.ReadAllCells(maxXLSRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: workbook has no rows", ErrUnreadableFile)
	}
	return rows, nil
}
