// file: internals/features/org/model/org_model.go
package model

import "time"

/* =======================================================
   Organizational hierarchy: directorate → department → office
   ======================================================= */

type DirectorateModel struct {
	DirectorateID        uint      `json:"directorate_id" gorm:"primaryKey;column:directorate_id"`
	DirectorateName      string    `json:"directorate_name" gorm:"type:varchar(255);not null;column:directorate_name"`
	DirectorateCreatedAt time.Time `json:"directorate_created_at" gorm:"column:directorate_created_at;not null;autoCreateTime"`
	DirectorateUpdatedAt time.Time `json:"directorate_updated_at" gorm:"column:directorate_updated_at;not null;autoUpdateTime"`
}

func (DirectorateModel) TableName() string {
	return "directorates"
}

type DepartmentModel struct {
	DepartmentID            uint      `json:"department_id" gorm:"primaryKey;column:department_id"`
	DepartmentName          string    `json:"department_name" gorm:"type:varchar(255);not null;column:department_name"`
	DepartmentDirectorateID uint      `json:"department_directorate_id" gorm:"not null;column:department_directorate_id"`
	DepartmentCreatedAt     time.Time `json:"department_created_at" gorm:"column:department_created_at;not null;autoCreateTime"`
	DepartmentUpdatedAt     time.Time `json:"department_updated_at" gorm:"column:department_updated_at;not null;autoUpdateTime"`

	Directorate *DirectorateModel `json:"directorate,omitempty" gorm:"foreignKey:DepartmentDirectorateID;references:DirectorateID"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

type OfficeModel struct {
	OfficeID           uint      `json:"office_id" gorm:"primaryKey;column:office_id"`
	OfficeName         string    `json:"office_name" gorm:"type:varchar(255);not null;index:idx_offices_name;column:office_name"`
	OfficeDepartmentID uint      `json:"office_department_id" gorm:"not null;column:office_department_id"`
	OfficeCreatedAt    time.Time `json:"office_created_at" gorm:"column:office_created_at;not null;autoCreateTime"`
	OfficeUpdatedAt    time.Time `json:"office_updated_at" gorm:"column:office_updated_at;not null;autoUpdateTime"`

	Department *DepartmentModel `json:"department,omitempty" gorm:"foreignKey:OfficeDepartmentID;references:DepartmentID"`
}

func (OfficeModel) TableName() string {
	return "offices"
}
