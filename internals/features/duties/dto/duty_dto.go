// file: internals/features/duties/dto/duty_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	m "dutychart_backend/internals/features/duties/model"
)

/* =======================================================
   Util & parsing — dates and times travel as strings
   ======================================================= */

var (
	layoutDate = "2006-01-02" // DATE
	layoutT1   = "15:04"      // TIME (HH:mm)
	layoutT2   = "15:04:05"   // TIME (HH:mm:ss)
)

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("invalid time format (want HH:mm or HH:mm:ss)")
}

func DatePtr(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

/* =======================================================
   Duty chart DTOs
   ======================================================= */

type CreateDutyChartRequest struct {
	DutyChartOfficeID      uint    `json:"duty_chart_office_id" validate:"required,gt=0"`
	DutyChartEffectiveDate string  `json:"duty_chart_effective_date" validate:"required"` // YYYY-MM-DD
	DutyChartEndDate       *string `json:"duty_chart_end_date,omitempty"`
	DutyChartEmployeeName  *string `json:"duty_chart_employee_name,omitempty" validate:"omitempty,max=255"`
	// Nepal format: +977 then exactly 10 digits. Charts are typed input,
	// so a bad phone here rejects instead of sanitizing.
	DutyChartPhoneNumber *string `json:"duty_chart_phone_number,omitempty" validate:"omitempty,startswith=+977,len=14"`
}

type DutyChartResponse struct {
	DutyChartID            uint    `json:"duty_chart_id"`
	DutyChartOfficeID      uint    `json:"duty_chart_office_id"`
	DutyChartEffectiveDate string  `json:"duty_chart_effective_date"`
	DutyChartEndDate       *string `json:"duty_chart_end_date,omitempty"`
	DutyChartEmployeeName  *string `json:"duty_chart_employee_name,omitempty"`
	DutyChartPhoneNumber   *string `json:"duty_chart_phone_number,omitempty"`
	OfficeName             string  `json:"office_name,omitempty"`
	DepartmentName         string  `json:"department_name,omitempty"`
	DirectorateName        string  `json:"directorate_name,omitempty"`
}

func NewDutyChartResponse(chart *m.DutyChartModel) DutyChartResponse {
	resp := DutyChartResponse{
		DutyChartID:            chart.DutyChartID,
		DutyChartOfficeID:      chart.DutyChartOfficeID,
		DutyChartEffectiveDate: chart.DutyChartEffectiveDate.Format(layoutDate),
		DutyChartEmployeeName:  chart.DutyChartEmployeeName,
		DutyChartPhoneNumber:   chart.DutyChartPhoneNumber,
	}
	if chart.DutyChartEndDate != nil {
		s := chart.DutyChartEndDate.Format(layoutDate)
		resp.DutyChartEndDate = &s
	}
	if chart.Office != nil {
		resp.OfficeName = chart.Office.OfficeName
		if chart.Office.Department != nil {
			resp.DepartmentName = chart.Office.Department.DepartmentName
			if chart.Office.Department.Directorate != nil {
				resp.DirectorateName = chart.Office.Department.Directorate.DirectorateName
			}
		}
	}
	return resp
}

/* =======================================================
   Duty DTOs
   ======================================================= */

type CreateDutyRequest struct {
	DutyChartID      uint   `json:"duty_chart_id" validate:"required,gt=0"`
	DutyEmployeeName string `json:"duty_employee_name" validate:"required,min=1,max=255"`
	DutyDate         string `json:"duty_date" validate:"required"` // YYYY-MM-DD
	DutyShift        string `json:"duty_shift" validate:"required,oneof=morning day night"`
	DutyIsCompleted  *bool  `json:"duty_is_completed,omitempty"`
	DutyAvailable    *bool  `json:"duty_currently_available,omitempty"`
	DutyStartTime    string `json:"duty_start_time" validate:"required"`
	DutyEndTime      string `json:"duty_end_time" validate:"required"`
}

type DutyResponse struct {
	DutyID                 uint   `json:"duty_id"`
	DutyChartID            uint   `json:"duty_chart_id"`
	DutyEmployeeName       string `json:"duty_employee_name"`
	DutyDate               string `json:"duty_date"`
	DutyShift              string `json:"duty_shift"`
	DutyIsCompleted        bool   `json:"duty_is_completed"`
	DutyCurrentlyAvailable bool   `json:"duty_currently_available"`
	DutyStartTime          string `json:"duty_start_time"`
	DutyEndTime            string `json:"duty_end_time"`
	OfficeName             string `json:"office_name,omitempty"`
}

func NewDutyResponse(duty *m.DutyModel) DutyResponse {
	resp := DutyResponse{
		DutyID:                 duty.DutyID,
		DutyChartID:            duty.DutyChartID,
		DutyEmployeeName:       duty.DutyEmployeeName,
		DutyDate:               duty.DutyDate.Format(layoutDate),
		DutyShift:              string(duty.DutyShift),
		DutyIsCompleted:        duty.DutyIsCompleted,
		DutyCurrentlyAvailable: duty.DutyCurrentlyAvailable,
		DutyStartTime:          duty.DutyStartTime.Format(layoutT2),
		DutyEndTime:            duty.DutyEndTime.Format(layoutT2),
	}
	if duty.DutyChart != nil && duty.DutyChart.Office != nil {
		resp.OfficeName = duty.DutyChart.Office.OfficeName
	}
	return resp
}

/* =======================================================
   Bulk upsert & rotation DTOs
   ======================================================= */

type BulkUpsertDutiesRequest []CreateDutyRequest

type GenerateRotationRequest struct {
	DutyChartID      uint     `json:"duty_chart_id" validate:"required,gt=0"`
	DutyEmployeeName string   `json:"duty_employee_name" validate:"required,min=1,max=255"`
	StartDate        string   `json:"start_date" validate:"required"`
	EndDate          string   `json:"end_date" validate:"required"`
	Pattern          []string `json:"pattern" validate:"omitempty,min=1,dive,oneof=morning day night"`
	Template         string   `json:"template,omitempty"` // rotation template name, alternative to an inline pattern
	Overwrite        bool     `json:"overwrite"`
}

type CreateRotationTemplateRequest struct {
	RotationTemplateName    string   `json:"rotation_template_name" validate:"required,min=1,max=50"`
	RotationTemplatePattern []string `json:"rotation_template_pattern" validate:"required,min=1,dive,oneof=morning day night"`
}
