// file: internals/features/documents/dto/document_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"dutychart_backend/internals/features/documents/model"
)

type DocumentResponse struct {
	DocumentID          string         `json:"document_id"`
	DocumentFilename    string         `json:"document_filename"`
	DocumentContentType string         `json:"document_content_type,omitempty"`
	DocumentSize        int64          `json:"document_size"`
	DocumentChecksum    string         `json:"document_checksum"`
	DocumentDescription string         `json:"document_description,omitempty"`
	DocumentMeta        datatypes.JSON `json:"document_meta,omitempty"`
	DocumentUploadedAt  time.Time      `json:"document_uploaded_at"`

	// Duplicate is true when the upload matched an already stored document
	// by checksum and no new file was written.
	Duplicate bool `json:"duplicate,omitempty"`
}

func NewDocumentResponse(m *model.DocumentModel, duplicate bool) DocumentResponse {
	return DocumentResponse{
		DocumentID:          m.DocumentID.String(),
		DocumentFilename:    m.DocumentFilename,
		DocumentContentType: m.DocumentContentType,
		DocumentSize:        m.DocumentSize,
		DocumentChecksum:    m.DocumentChecksum,
		DocumentDescription: m.DocumentDescription,
		DocumentMeta:        m.DocumentMeta,
		DocumentUploadedAt:  m.DocumentUploadedAt,
		Duplicate:           duplicate,
	}
}
