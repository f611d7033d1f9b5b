// file: internals/features/roster/controller/roster_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/roster/dto"
	"dutychart_backend/internals/features/roster/model"
	"dutychart_backend/internals/features/roster/service"
	helper "dutychart_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type RosterController struct {
	DB *gorm.DB
}

func NewRosterController(db *gorm.DB) *RosterController {
	return &RosterController{DB: db}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || n == 0 {
		return 0, fiber.NewError(http.StatusBadRequest, name+" invalid")
	}
	return uint(n), nil
}

/* =========================
   Query: List
   ========================= */

type listRosterQuery struct {
	Office    uint   `query:"office"`
	Employee  string `query:"employee"`   // partial match
	StartDate string `query:"start_date"` // range on start_date
	EndDate   string `query:"end_date"`
	Shift     string `query:"shift"` // exact, case-insensitive
	Status    string `query:"status"`
}

func (ctl *RosterController) List(c *fiber.Ctx) error {
	var q listRosterQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&model.RosterAssignmentModel{})
	if q.Office > 0 {
		db = db.Where("roster_assignment_office_id = ?", q.Office)
	}
	if q.Employee != "" {
		db = db.Where("roster_assignment_employee_name ILIKE ?", "%"+q.Employee+"%")
	}
	if q.StartDate != "" {
		db = db.Where("roster_assignment_start_date >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		db = db.Where("roster_assignment_start_date <= ?", q.EndDate)
	}
	if q.Shift != "" {
		db = db.Where("LOWER(roster_assignment_shift) = LOWER(?)", q.Shift)
	}
	if q.Status != "" {
		db = db.Where("roster_assignment_status = ?", q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.RosterAssignmentModel
	if err := db.Preload("Office").
		Order("roster_assignment_start_date ASC, roster_assignment_employee_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.RosterAssignmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewRosterAssignmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *RosterController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.RosterAssignmentModel
	if err := ctl.DB.Preload("Office").First(&row, "roster_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Roster assignment not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewRosterAssignmentResponse(&row))
}

/* =========================
   Upsert (create & update share reconcile semantics)
   ========================= */

// Upsert pushes one record through the same normalize → validate →
// reconcile path the bulk upload uses. Created vs updated is reported in
// the response code: 201 on create, 200 on update.
func (ctl *RosterController) Upsert(c *fiber.Ctx) error {
	var in service.RecordInput
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}

	imp := service.NewImporter(service.NewGormStore(ctl.DB))
	out, err := imp.ReconcileRecord(in, false)
	if err != nil {
		var rerr *service.RowError
		if errors.As(err, &rerr) {
			return helper.Error(c, http.StatusBadRequest, rerr.Error())
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if out == service.OutcomeCreated {
		return helper.SuccessWithCode(c, http.StatusCreated, "Roster assignment created", fiber.Map{"outcome": out.String()})
	}
	return helper.Success(c, "Roster assignment updated", fiber.Map{"outcome": out.String()})
}

func (ctl *RosterController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.RosterAssignmentModel{}, "roster_assignment_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Roster assignment not found")
	}
	return helper.Success(c, "Roster assignment deleted", nil)
}
