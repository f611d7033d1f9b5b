// file: internals/features/roster/controller/schedule_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/roster/dto"
	"dutychart_backend/internals/features/roster/model"
	helper "dutychart_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

type listScheduleQuery struct {
	Office    uint   `query:"office"`
	Employee  string `query:"employee"`   // partial match
	StartDate string `query:"start_date"` // range on start_date
	EndDate   string `query:"end_date"`
	Shift     string `query:"shift"` // exact, case-insensitive
}

func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	var q listScheduleQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&model.ScheduleModel{})
	if q.Office > 0 {
		db = db.Where("schedule_office_id = ?", q.Office)
	}
	if q.Employee != "" {
		db = db.Where("schedule_employee_name ILIKE ?", "%"+q.Employee+"%")
	}
	if q.StartDate != "" {
		db = db.Where("schedule_start_date >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		db = db.Where("schedule_start_date <= ?", q.EndDate)
	}
	if q.Shift != "" {
		db = db.Where("LOWER(schedule_shift) = LOWER(?)", q.Shift)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.ScheduleModel
	if err := db.Preload("Office").
		Order("schedule_start_date ASC, schedule_start_time ASC, schedule_employee_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.ScheduleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewScheduleResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.ScheduleModel
	if err := ctl.DB.Preload("Office").First(&row, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Schedule not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewScheduleResponse(&row))
}

/* =========================
   POST /schedules/sync-from-roster
   ========================= */

// SyncFromRoster mirrors every roster assignment into the schedules table,
// matching on the shared natural key. Existing schedules are refreshed,
// missing ones created.
func (ctl *ScheduleController) SyncFromRoster(c *fiber.Ctx) error {
	var created, updated int

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var assignments []model.RosterAssignmentModel
		if err := tx.Find(&assignments).Error; err != nil {
			return err
		}

		for i := range assignments {
			next := model.FromRosterAssignment(&assignments[i])

			q := tx.Model(&model.ScheduleModel{}).
				Where("schedule_employee_name = ?", next.ScheduleEmployeeName).
				Where("schedule_office_id = ?", next.ScheduleOfficeID).
				Where("schedule_start_time = ?", next.ScheduleStartTime).
				Where("schedule_end_time = ?", next.ScheduleEndTime).
				Where("schedule_shift = ?", next.ScheduleShift)
			if next.ScheduleStartDate != nil {
				q = q.Where("schedule_start_date = ?", next.ScheduleStartDate)
			} else {
				q = q.Where("schedule_start_date IS NULL")
			}
			if next.ScheduleEndDate != nil {
				q = q.Where("schedule_end_date = ?", next.ScheduleEndDate)
			} else {
				q = q.Where("schedule_end_date IS NULL")
			}

			var existing model.ScheduleModel
			err := q.First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"schedule_phone_number": next.SchedulePhoneNumber,
					"schedule_status":       next.ScheduleStatus,
				}).Error; err != nil {
					return err
				}
				updated++
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&next).Error; err != nil {
					return err
				}
				created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Schedules synced", fiber.Map{
		"created": created,
		"updated": updated,
	})
}
