// file: internals/features/documents/model/document_model.go
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const MaxUploadSize = 50 * 1024 * 1024 // bytes

/* =======================================================
   DocumentModel — uploaded files, deduplicated by checksum
   ======================================================= */

type DocumentModel struct {
	DocumentID uuid.UUID `json:"document_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:document_id"`

	DocumentPath        string `json:"document_path" gorm:"type:text;not null;column:document_path"`
	DocumentFilename    string `json:"document_filename" gorm:"type:varchar(255);not null;column:document_filename"`
	DocumentContentType string `json:"document_content_type" gorm:"type:varchar(100);column:document_content_type"`
	DocumentSize        int64  `json:"document_size" gorm:"not null;column:document_size"`

	// SHA-256 of the file content; unique so identical uploads collapse
	// into one stored document.
	DocumentChecksum string `json:"document_checksum" gorm:"type:varchar(64);not null;uniqueIndex;column:document_checksum"`

	DocumentDescription string         `json:"document_description" gorm:"type:text;column:document_description"`
	DocumentMeta        datatypes.JSON `json:"document_meta,omitempty" gorm:"column:document_meta"`

	DocumentUploadedAt time.Time `json:"document_uploaded_at" gorm:"column:document_uploaded_at;not null;autoCreateTime"`
}

func (DocumentModel) TableName() string {
	return "documents"
}

// Checksum computes the SHA-256 hex digest of r in chunks.
func Checksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
