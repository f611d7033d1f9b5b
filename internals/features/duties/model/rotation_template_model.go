// file: internals/features/duties/model/rotation_template_model.go
package model

import (
	"time"

	"github.com/lib/pq"
)

/* =======================================================
   RotationTemplateModel — named shift pattern for
   generate-rotation (pattern cycles across the date range)
   ======================================================= */

type RotationTemplateModel struct {
	RotationTemplateID      uint           `json:"rotation_template_id" gorm:"primaryKey;column:rotation_template_id"`
	RotationTemplateName    string         `json:"rotation_template_name" gorm:"type:varchar(50);not null;uniqueIndex;column:rotation_template_name"`
	RotationTemplatePattern pq.StringArray `json:"rotation_template_pattern" gorm:"type:text[];not null;column:rotation_template_pattern"`

	RotationTemplateCreatedAt time.Time `json:"rotation_template_created_at" gorm:"column:rotation_template_created_at;not null;autoCreateTime"`
	RotationTemplateUpdatedAt time.Time `json:"rotation_template_updated_at" gorm:"column:rotation_template_updated_at;not null;autoUpdateTime"`
}

func (RotationTemplateModel) TableName() string {
	return "rotation_templates"
}
