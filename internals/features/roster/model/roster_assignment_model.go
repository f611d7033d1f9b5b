// file: internals/features/roster/model/roster_assignment_model.go
package model

import (
	"time"

	orgModel "dutychart_backend/internals/features/org/model"
)

/* =======================================================
   RosterAssignmentModel — the unit the import pipeline
   produces. Identity is the natural key below; the unique
   index is the storage backstop for concurrent upserts.
   ======================================================= */

type RosterAssignmentModel struct {
	RosterAssignmentID uint `json:"roster_assignment_id" gorm:"primaryKey;column:roster_assignment_id"`

	// Natural key
	RosterAssignmentEmployeeName string     `json:"roster_assignment_employee_name" gorm:"type:varchar(255);not null;uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_employee_name"`
	RosterAssignmentOfficeID     uint       `json:"roster_assignment_office_id" gorm:"not null;index;uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_office_id"`
	RosterAssignmentStartDate    *time.Time `json:"roster_assignment_start_date,omitempty" gorm:"type:date;uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_start_date"`
	RosterAssignmentEndDate      *time.Time `json:"roster_assignment_end_date,omitempty" gorm:"type:date;uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_end_date"`
	RosterAssignmentStartTime    string     `json:"roster_assignment_start_time" gorm:"type:time;not null;default:'09:00:00';uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_start_time"`
	RosterAssignmentEndTime      string     `json:"roster_assignment_end_time" gorm:"type:time;not null;default:'17:00:00';uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_end_time"`
	RosterAssignmentShift        string     `json:"roster_assignment_shift" gorm:"type:varchar(20);not null;uniqueIndex:uq_roster_assignments_natural_key;column:roster_assignment_shift"`

	// Non-key fields, overwritten on upsert
	RosterAssignmentPhoneNumber *string `json:"roster_assignment_phone_number,omitempty" gorm:"type:varchar(20);column:roster_assignment_phone_number"`
	RosterAssignmentStatus      string  `json:"roster_assignment_status" gorm:"type:varchar(20);not null;default:'pending';column:roster_assignment_status"`

	RosterAssignmentCreatedAt time.Time `json:"roster_assignment_created_at" gorm:"column:roster_assignment_created_at;not null;autoCreateTime"`
	RosterAssignmentUpdatedAt time.Time `json:"roster_assignment_updated_at" gorm:"column:roster_assignment_updated_at;not null;autoUpdateTime"`

	Office *orgModel.OfficeModel `json:"office,omitempty" gorm:"foreignKey:RosterAssignmentOfficeID;references:OfficeID"`
}

func (RosterAssignmentModel) TableName() string {
	return "roster_assignments"
}
