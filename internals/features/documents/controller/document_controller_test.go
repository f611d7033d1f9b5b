// file: internals/features/documents/controller/document_controller_test.go
package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"dutychart_backend/internals/configs"
)

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("files", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/documents/bulk-upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestBulkUploadRejectsEmptyFile(t *testing.T) {
	configs.DocumentDir = t.TempDir()
	app := fiber.New()
	ctl := NewDocumentController(nil)
	app.Post("/documents/bulk-upload", ctl.BulkUpload)

	resp, err := app.Test(uploadRequest(t, "empty.pdf", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a zero-byte file", resp.StatusCode)
	}
}

func TestBulkUploadRequiresFiles(t *testing.T) {
	configs.DocumentDir = t.TempDir()
	app := fiber.New()
	ctl := NewDocumentController(nil)
	app.Post("/documents/bulk-upload", ctl.BulkUpload)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/documents/bulk-upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when no files are attached", resp.StatusCode)
	}
}
