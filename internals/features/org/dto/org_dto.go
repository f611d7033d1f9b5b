// file: internals/features/org/dto/org_dto.go
package dto

import (
	m "dutychart_backend/internals/features/org/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateDirectorateRequest struct {
	DirectorateName string `json:"directorate_name" validate:"required,min=1,max=255"`
}

type CreateDepartmentRequest struct {
	DepartmentName          string `json:"department_name" validate:"required,min=1,max=255"`
	DepartmentDirectorateID uint   `json:"department_directorate_id" validate:"required,gt=0"`
}

type CreateOfficeRequest struct {
	OfficeName         string `json:"office_name" validate:"required,min=1,max=255"`
	OfficeDepartmentID uint   `json:"office_department_id" validate:"required,gt=0"`
}

/* =======================================================
   Response DTOs — denormalize parent names the way the
   admin frontend consumes them
   ======================================================= */

type DirectorateResponse struct {
	DirectorateID   uint   `json:"directorate_id"`
	DirectorateName string `json:"directorate_name"`
}

type DepartmentResponse struct {
	DepartmentID            uint   `json:"department_id"`
	DepartmentName          string `json:"department_name"`
	DepartmentDirectorateID uint   `json:"department_directorate_id"`
	DirectorateName         string `json:"directorate_name,omitempty"`
}

type OfficeResponse struct {
	OfficeID           uint   `json:"office_id"`
	OfficeName         string `json:"office_name"`
	OfficeDepartmentID uint   `json:"office_department_id"`
	DepartmentName     string `json:"department_name,omitempty"`
	DirectorateName    string `json:"directorate_name,omitempty"`
}

func NewDirectorateResponse(d *m.DirectorateModel) DirectorateResponse {
	return DirectorateResponse{
		DirectorateID:   d.DirectorateID,
		DirectorateName: d.DirectorateName,
	}
}

func NewDepartmentResponse(d *m.DepartmentModel) DepartmentResponse {
	resp := DepartmentResponse{
		DepartmentID:            d.DepartmentID,
		DepartmentName:          d.DepartmentName,
		DepartmentDirectorateID: d.DepartmentDirectorateID,
	}
	if d.Directorate != nil {
		resp.DirectorateName = d.Directorate.DirectorateName
	}
	return resp
}

func NewOfficeResponse(o *m.OfficeModel) OfficeResponse {
	resp := OfficeResponse{
		OfficeID:           o.OfficeID,
		OfficeName:         o.OfficeName,
		OfficeDepartmentID: o.OfficeDepartmentID,
	}
	if o.Department != nil {
		resp.DepartmentName = o.Department.DepartmentName
		if o.Department.Directorate != nil {
			resp.DirectorateName = o.Department.Directorate.DirectorateName
		}
	}
	return resp
}
