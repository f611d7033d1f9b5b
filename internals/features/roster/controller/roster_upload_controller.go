// file: internals/features/roster/controller/roster_upload_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dutychart_backend/internals/features/roster/service"
)

// maxWorkbookSize bounds a single roster workbook upload.
const maxWorkbookSize = 20 << 20 // 20 MiB

/* =========================
   POST /roster/bulk-upload
   ========================= */

// BulkUpload ingests a spreadsheet of roster assignments. Batch-fatal
// problems (unreadable file, header mismatch) come back as 400; row-level
// problems are collected into the report and the request still succeeds.
func (ctl *RosterController) BulkUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported file type, expected .xlsx or .xls",
		})
	}
	if fh.Size > maxWorkbookSize {
		return c.Status(http.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "file too large",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "could not open uploaded file",
		})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "could not read uploaded file",
		})
	}

	dryRun := c.QueryBool("dry_run") || c.FormValue("dry_run") == "true"

	imp := service.NewImporter(service.NewGormStore(ctl.DB))
	if c.Query("phone_policy") == "reject" {
		imp.Phone = service.PhoneReject
	}

	rep, err := imp.Run(data, fh.Filename, dryRun)
	if err != nil {
		var mm *service.HeaderMismatch
		if errors.As(err, &mm) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error":          "Header mismatch",
				"missing":        mm.Missing,
				"unexpected":     mm.Unexpected,
				"expected_exact": mm.Expected,
			})
		}
		if errors.Is(err, service.ErrUnreadableFile) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "File could not be read as a spreadsheet",
			})
		}
		log.Printf("[ROSTER] bulk upload failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Import failed",
		})
	}

	log.Printf("[ROSTER] bulk upload %q: created=%d updated=%d failed=%d dry_run=%v",
		fh.Filename, rep.Created, rep.Updated, rep.Failed, rep.DryRun)
	return c.Status(http.StatusOK).JSON(rep)
}
