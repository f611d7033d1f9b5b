// file: internals/features/documents/controller/document_controller.go
package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"dutychart_backend/internals/configs"
	"dutychart_backend/internals/features/documents/dto"
	"dutychart_backend/internals/features/documents/model"
	helper "dutychart_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

func (ctl *DocumentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&model.DocumentModel{})
	if name := c.Query("filename"); name != "" {
		db = db.Where("document_filename ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.DocumentModel
	if err := db.Order("document_uploaded_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.DocumentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewDocumentResponse(&rows[i], false))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *DocumentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "id invalid")
	}
	var row model.DocumentModel
	if err := ctl.DB.First(&row, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Document not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewDocumentResponse(&row, false))
}

// Download streams the stored file with its original filename.
func (ctl *DocumentController) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "id invalid")
	}
	var row model.DocumentModel
	if err := ctl.DB.First(&row, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Document not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return c.Download(row.DocumentPath, row.DocumentFilename)
}

/* =========================
   POST /documents/bulk-upload
   ========================= */

// BulkUpload stores a batch of files from the multipart field "files".
// An optional "meta" form field carries a JSON object keyed by filename.
// Files whose checksum already exists are not stored again; the existing
// document is returned flagged as duplicate.
func (ctl *DocumentController) BulkUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "multipart form required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.Error(c, http.StatusBadRequest, "at least one file is required")
	}

	metaByName := map[string]json.RawMessage{}
	if raw := c.FormValue("meta"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metaByName); err != nil {
			return helper.Error(c, http.StatusBadRequest, "meta must be a JSON object keyed by filename")
		}
	}

	now := time.Now()
	dir := filepath.Join(configs.DocumentDir, strconv.Itoa(now.Year()), fmt.Sprintf("%02d", int(now.Month())))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	results := make([]dto.DocumentResponse, 0, len(files))
	for _, fh := range files {
		if fh.Size == 0 {
			return helper.Error(c, http.StatusBadRequest, fh.Filename+" is empty")
		}
		if fh.Size > model.MaxUploadSize {
			return helper.Error(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("%s exceeds the upload size limit", fh.Filename))
		}

		f, err := fh.Open()
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "could not open "+fh.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "could not read "+fh.Filename)
		}

		sum, err := model.Checksum(bytes.NewReader(data))
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}

		var existing model.DocumentModel
		err = ctl.DB.First(&existing, "document_checksum = ?", sum).Error
		if err == nil {
			results = append(results, dto.NewDocumentResponse(&existing, true))
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}

		id := uuid.New()
		path := filepath.Join(dir, id.String()+filepath.Ext(fh.Filename))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}

		doc := model.DocumentModel{
			DocumentID:          id,
			DocumentPath:        path,
			DocumentFilename:    fh.Filename,
			DocumentContentType: fh.Header.Get("Content-Type"),
			DocumentSize:        fh.Size,
			DocumentChecksum:    sum,
		}
		if m, ok := metaByName[fh.Filename]; ok {
			doc.DocumentMeta = datatypes.JSON(m)
		}
		if err := ctl.DB.Create(&doc).Error; err != nil {
			// drop the orphaned file, the row is the source of truth
			_ = os.Remove(path)
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		results = append(results, dto.NewDocumentResponse(&doc, false))
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Documents uploaded", results)
}

func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "id invalid")
	}
	var row model.DocumentModel
	if err := ctl.DB.First(&row, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Document not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	_ = os.Remove(row.DocumentPath)
	return helper.Success(c, "Document deleted", nil)
}
