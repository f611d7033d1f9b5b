// file: internals/features/duties/model/duty_model.go
package model

import "time"

/* =======================================================
   Enum shift (duty shifts are a closed set, unlike roster rows)
   ======================================================= */

type DutyShift string

const (
	ShiftMorning DutyShift = "morning"
	ShiftDay     DutyShift = "day"
	ShiftNight   DutyShift = "night"
)

func (s DutyShift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftDay, ShiftNight:
		return true
	}
	return false
}

/* =======================================================
   DutyModel — one employee shift on one chart day
   ======================================================= */

type DutyModel struct {
	DutyID uint `json:"duty_id" gorm:"primaryKey;column:duty_id"`

	DutyChartID      uint   `json:"duty_chart_id" gorm:"not null;index;uniqueIndex:uq_duties_chart_date_shift;column:duty_chart_id"`
	DutyEmployeeName string `json:"duty_employee_name" gorm:"type:varchar(255);not null;index;column:duty_employee_name"`

	DutyDate  time.Time `json:"duty_date" gorm:"type:date;not null;uniqueIndex:uq_duties_chart_date_shift;column:duty_date"`
	DutyShift DutyShift `json:"duty_shift" gorm:"type:varchar(10);not null;uniqueIndex:uq_duties_chart_date_shift;column:duty_shift"`

	DutyIsCompleted        bool `json:"duty_is_completed" gorm:"not null;default:false;column:duty_is_completed"`
	DutyCurrentlyAvailable bool `json:"duty_currently_available" gorm:"not null;default:true;column:duty_currently_available"`

	DutyStartTime time.Time `json:"duty_start_time" gorm:"type:time;not null;column:duty_start_time"`
	DutyEndTime   time.Time `json:"duty_end_time" gorm:"type:time;not null;column:duty_end_time"`

	DutyCreatedAt time.Time `json:"duty_created_at" gorm:"column:duty_created_at;not null;autoCreateTime"`
	DutyUpdatedAt time.Time `json:"duty_updated_at" gorm:"column:duty_updated_at;not null;autoUpdateTime"`

	DutyChart *DutyChartModel `json:"duty_chart,omitempty" gorm:"foreignKey:DutyChartID;references:DutyChartID"`
}

func (DutyModel) TableName() string {
	return "duties"
}
