// file: internals/features/roster/model/schedule_model.go
package model

import (
	"time"

	orgModel "dutychart_backend/internals/features/org/model"
)

/* =======================================================
   ScheduleModel — read-optimized mirror of roster
   assignments, filled by sync-from-roster. Same natural key.
   ======================================================= */

type ScheduleModel struct {
	ScheduleID uint `json:"schedule_id" gorm:"primaryKey;column:schedule_id"`

	ScheduleEmployeeName string     `json:"schedule_employee_name" gorm:"type:varchar(255);not null;uniqueIndex:uq_schedules_natural_key;column:schedule_employee_name"`
	ScheduleOfficeID     uint       `json:"schedule_office_id" gorm:"not null;index;uniqueIndex:uq_schedules_natural_key;column:schedule_office_id"`
	ScheduleStartDate    *time.Time `json:"schedule_start_date,omitempty" gorm:"type:date;index;uniqueIndex:uq_schedules_natural_key;column:schedule_start_date"`
	ScheduleEndDate      *time.Time `json:"schedule_end_date,omitempty" gorm:"type:date;uniqueIndex:uq_schedules_natural_key;column:schedule_end_date"`
	ScheduleStartTime    string     `json:"schedule_start_time" gorm:"type:time;not null;default:'09:00:00';uniqueIndex:uq_schedules_natural_key;column:schedule_start_time"`
	ScheduleEndTime      string     `json:"schedule_end_time" gorm:"type:time;not null;default:'17:00:00';uniqueIndex:uq_schedules_natural_key;column:schedule_end_time"`
	ScheduleShift        string     `json:"schedule_shift" gorm:"type:varchar(20);not null;index;uniqueIndex:uq_schedules_natural_key;column:schedule_shift"`

	SchedulePhoneNumber *string `json:"schedule_phone_number,omitempty" gorm:"type:varchar(20);column:schedule_phone_number"`
	ScheduleStatus      string  `json:"schedule_status" gorm:"type:varchar(20);not null;default:'pending';column:schedule_status"`

	ScheduleCreatedAt time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at;not null;autoCreateTime"`
	ScheduleUpdatedAt time.Time `json:"schedule_updated_at" gorm:"column:schedule_updated_at;not null;autoUpdateTime"`

	Office *orgModel.OfficeModel `json:"office,omitempty" gorm:"foreignKey:ScheduleOfficeID;references:OfficeID"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

// FromRosterAssignment copies the shared fields from a roster assignment.
func FromRosterAssignment(ra *RosterAssignmentModel) ScheduleModel {
	return ScheduleModel{
		ScheduleEmployeeName: ra.RosterAssignmentEmployeeName,
		ScheduleOfficeID:     ra.RosterAssignmentOfficeID,
		ScheduleStartDate:    ra.RosterAssignmentStartDate,
		ScheduleEndDate:      ra.RosterAssignmentEndDate,
		ScheduleStartTime:    ra.RosterAssignmentStartTime,
		ScheduleEndTime:      ra.RosterAssignmentEndTime,
		ScheduleShift:        ra.RosterAssignmentShift,
		SchedulePhoneNumber:  ra.RosterAssignmentPhoneNumber,
		ScheduleStatus:       ra.RosterAssignmentStatus,
	}
}
