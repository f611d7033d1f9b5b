// file: internals/features/duties/controller/duty_bulk_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/duties/dto"
	"dutychart_backend/internals/features/duties/model"
	helper "dutychart_backend/internals/helpers"
)

/* =========================
   Bulk upsert
   ========================= */

// BulkUpsert creates or updates many duties in one request, keyed on
// (employee, chart, date). Returns {created, updated}.
func (ctl *DutyController) BulkUpsert(c *fiber.Ctx) error {
	var reqs dto.BulkUpsertDutiesRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body, want a JSON array of duties")
	}

	created, updated := 0, 0
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for i := range reqs {
			req := reqs[i]
			if err := ctl.Validate.Struct(req); err != nil {
				return err
			}
			row, err := ctl.dutyFromRequest(&req)
			if err != nil {
				return err
			}

			var existing model.DutyModel
			lookErr := tx.Where("duty_employee_name = ? AND duty_chart_id = ? AND duty_date = ?",
				row.DutyEmployeeName, row.DutyChartID, row.DutyDate).
				First(&existing).Error
			switch {
			case lookErr == nil:
				row.DutyID = existing.DutyID
				if err := tx.Save(row).Error; err != nil {
					return err
				}
				updated++
			case errors.Is(lookErr, gorm.ErrRecordNotFound):
				if err := tx.Create(row).Error; err != nil {
					return err
				}
				created++
			default:
				return lookErr
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "Bulk upsert complete", fiber.Map{
		"created": created,
		"updated": updated,
	})
}

/* =========================
   Rotation generator: cycles a shift pattern across a
   date range, one duty per day. Naive repetition only.
   ========================= */

// CyclePattern returns the shift for day index i of the rotation.
func CyclePattern(pattern []string, i int) string {
	return pattern[i%len(pattern)]
}

// RotationDays counts the inclusive days between start and end.
func RotationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func (ctl *DutyController) GenerateRotation(c *fiber.Ctx) error {
	var req dto.GenerateRotationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	pattern := req.Pattern
	if len(pattern) == 0 && req.Template != "" {
		var tpl model.RotationTemplateModel
		if err := ctl.DB.First(&tpl, "rotation_template_name = ?", req.Template).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, http.StatusBadRequest, "Rotation template not found")
			}
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		pattern = tpl.RotationTemplatePattern
	}
	if len(pattern) == 0 {
		return helper.Error(c, http.StatusBadRequest, "Either pattern or template is required")
	}

	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "start_date: "+err.Error())
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "end_date: "+err.Error())
	}
	if end.Before(start) {
		return helper.Error(c, http.StatusBadRequest, "end_date must be after or equal to start_date")
	}

	var chart model.DutyChartModel
	if err := ctl.DB.First(&chart, "duty_chart_id = ?", req.DutyChartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusBadRequest, "Duty chart not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	created, updated, skipped := 0, 0, 0
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < RotationDays(start, end); i++ {
			dutyDate := start.AddDate(0, 0, i)
			shift := model.DutyShift(CyclePattern(pattern, i))

			var existing model.DutyModel
			lookErr := tx.Where("duty_employee_name = ? AND duty_chart_id = ? AND duty_date = ?",
				req.DutyEmployeeName, req.DutyChartID, dutyDate).
				First(&existing).Error
			switch {
			case lookErr == nil && req.Overwrite:
				existing.DutyShift = shift
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				updated++
			case lookErr == nil:
				skipped++
			case errors.Is(lookErr, gorm.ErrRecordNotFound):
				row := model.DutyModel{
					DutyChartID:            req.DutyChartID,
					DutyEmployeeName:       req.DutyEmployeeName,
					DutyDate:               dutyDate,
					DutyShift:              shift,
					DutyCurrentlyAvailable: true,
					DutyStartTime:          shiftStartTime(shift),
					DutyEndTime:            shiftEndTime(shift),
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				created++
			default:
				return lookErr
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Rotation generated", fiber.Map{
		"created": created,
		"updated": updated,
		"skipped": skipped,
	})
}

// Default working windows per shift.
func shiftStartTime(s model.DutyShift) time.Time {
	switch s {
	case model.ShiftMorning:
		return clock(6, 0)
	case model.ShiftNight:
		return clock(22, 0)
	default:
		return clock(9, 0)
	}
}

func shiftEndTime(s model.DutyShift) time.Time {
	switch s {
	case model.ShiftMorning:
		return clock(14, 0)
	case model.ShiftNight:
		return clock(23, 59)
	default:
		return clock(17, 0)
	}
}

func clock(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}
