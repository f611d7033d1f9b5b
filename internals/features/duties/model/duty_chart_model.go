// file: internals/features/duties/model/duty_chart_model.go
package model

import (
	"time"

	orgModel "dutychart_backend/internals/features/org/model"
)

/* =======================================================
   DutyChartModel — one chart per office + effective period
   ======================================================= */

type DutyChartModel struct {
	DutyChartID uint `json:"duty_chart_id" gorm:"primaryKey;column:duty_chart_id"`

	DutyChartOfficeID uint `json:"duty_chart_office_id" gorm:"not null;index;column:duty_chart_office_id"`

	DutyChartEffectiveDate time.Time  `json:"duty_chart_effective_date" gorm:"type:date;not null;column:duty_chart_effective_date"`
	DutyChartEndDate       *time.Time `json:"duty_chart_end_date,omitempty" gorm:"type:date;column:duty_chart_end_date"`

	DutyChartEmployeeName *string `json:"duty_chart_employee_name,omitempty" gorm:"type:varchar(255);column:duty_chart_employee_name"`
	DutyChartPhoneNumber  *string `json:"duty_chart_phone_number,omitempty" gorm:"type:varchar(14);column:duty_chart_phone_number"`

	DutyChartCreatedAt time.Time `json:"duty_chart_created_at" gorm:"column:duty_chart_created_at;not null;autoCreateTime"`
	DutyChartUpdatedAt time.Time `json:"duty_chart_updated_at" gorm:"column:duty_chart_updated_at;not null;autoUpdateTime"`

	Office *orgModel.OfficeModel `json:"office,omitempty" gorm:"foreignKey:DutyChartOfficeID;references:OfficeID"`
}

func (DutyChartModel) TableName() string {
	return "duty_charts"
}

// CoversDate reports whether d falls inside the chart's effective period.
func (m *DutyChartModel) CoversDate(d time.Time) bool {
	if d.Before(m.DutyChartEffectiveDate) {
		return false
	}
	if m.DutyChartEndDate != nil && d.After(*m.DutyChartEndDate) {
		return false
	}
	return true
}
