// file: internals/features/roster/dto/roster_dto.go
package dto

import (
	m "dutychart_backend/internals/features/roster/model"
)

const (
	layoutDate = "2006-01-02"
)

/* =======================================================
   Response DTOs
   ======================================================= */

type RosterAssignmentResponse struct {
	RosterAssignmentID uint    `json:"roster_assignment_id"`
	EmployeeName       string  `json:"employee_name"`
	OfficeID           uint    `json:"office_id"`
	OfficeName         string  `json:"office_name,omitempty"`
	StartDate          *string `json:"start_date,omitempty"`
	EndDate            *string `json:"end_date,omitempty"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	Shift              string  `json:"shift"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	Status             string  `json:"status"`
}

func NewRosterAssignmentResponse(ra *m.RosterAssignmentModel) RosterAssignmentResponse {
	resp := RosterAssignmentResponse{
		RosterAssignmentID: ra.RosterAssignmentID,
		EmployeeName:       ra.RosterAssignmentEmployeeName,
		OfficeID:           ra.RosterAssignmentOfficeID,
		StartTime:          ra.RosterAssignmentStartTime,
		EndTime:            ra.RosterAssignmentEndTime,
		Shift:              ra.RosterAssignmentShift,
		PhoneNumber:        ra.RosterAssignmentPhoneNumber,
		Status:             ra.RosterAssignmentStatus,
	}
	if ra.RosterAssignmentStartDate != nil {
		s := ra.RosterAssignmentStartDate.Format(layoutDate)
		resp.StartDate = &s
	}
	if ra.RosterAssignmentEndDate != nil {
		s := ra.RosterAssignmentEndDate.Format(layoutDate)
		resp.EndDate = &s
	}
	if ra.Office != nil {
		resp.OfficeName = ra.Office.OfficeName
	}
	return resp
}

type ScheduleResponse struct {
	ScheduleID   uint    `json:"schedule_id"`
	EmployeeName string  `json:"employee_name"`
	OfficeID     uint    `json:"office_id"`
	OfficeName   string  `json:"office_name,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Shift        string  `json:"shift"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Status       string  `json:"status"`
}

func NewScheduleResponse(s *m.ScheduleModel) ScheduleResponse {
	resp := ScheduleResponse{
		ScheduleID:   s.ScheduleID,
		EmployeeName: s.ScheduleEmployeeName,
		OfficeID:     s.ScheduleOfficeID,
		StartTime:    s.ScheduleStartTime,
		EndTime:      s.ScheduleEndTime,
		Shift:        s.ScheduleShift,
		PhoneNumber:  s.SchedulePhoneNumber,
		Status:       s.ScheduleStatus,
	}
	if s.ScheduleStartDate != nil {
		v := s.ScheduleStartDate.Format(layoutDate)
		resp.StartDate = &v
	}
	if s.ScheduleEndDate != nil {
		v := s.ScheduleEndDate.Format(layoutDate)
		resp.EndDate = &v
	}
	if s.Office != nil {
		resp.OfficeName = s.Office.OfficeName
	}
	return resp
}
