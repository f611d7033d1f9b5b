// file: internals/features/duties/controller/duty_chart_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/duties/dto"
	"dutychart_backend/internals/features/duties/model"
	orgModel "dutychart_backend/internals/features/org/model"
	"dutychart_backend/internals/features/roster/service"
	helper "dutychart_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type DutyChartController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDutyChartController(db *gorm.DB, v *validator.Validate) *DutyChartController {
	return &DutyChartController{DB: db, Validate: v}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || n == 0 {
		return 0, fiber.NewError(http.StatusBadRequest, name+" invalid")
	}
	return uint(n), nil
}

/* =========================
   Handlers
   ========================= */

func (ctl *DutyChartController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.DutyChartModel{})
	if v := c.QueryInt("office"); v > 0 {
		db = db.Where("duty_chart_office_id = ?", v)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.DutyChartModel
	if err := db.Preload("Office.Department.Directorate").
		Order("duty_chart_effective_date DESC").Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.DutyChartResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewDutyChartResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *DutyChartController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.DutyChartModel
	if err := ctl.DB.Preload("Office.Department.Directorate").
		First(&row, "duty_chart_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Duty chart not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewDutyChartResponse(&row))
}

func (ctl *DutyChartController) Create(c *fiber.Ctx) error {
	var req dto.CreateDutyChartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.chartFromRequest(&req)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Duty chart created", dto.NewDutyChartResponse(row))
}

func (ctl *DutyChartController) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateDutyChartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.DutyChartModel
	if err := ctl.DB.First(&existing, "duty_chart_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Duty chart not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	row, err := ctl.chartFromRequest(&req)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	row.DutyChartID = existing.DutyChartID
	if err := ctl.DB.Save(row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Duty chart updated", dto.NewDutyChartResponse(row))
}

func (ctl *DutyChartController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.DutyChartModel{}, "duty_chart_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Duty chart not found")
	}
	return helper.Success(c, "Duty chart deleted", nil)
}

// chartFromRequest parses the date strings and checks cross-entity rules.
func (ctl *DutyChartController) chartFromRequest(req *dto.CreateDutyChartRequest) (*model.DutyChartModel, error) {
	effective, err := dto.ParseDate(req.DutyChartEffectiveDate)
	if err != nil {
		return nil, errors.New("duty_chart_effective_date: " + err.Error())
	}

	// charts are typed input, so a malformed phone rejects outright
	if req.DutyChartPhoneNumber != nil && *req.DutyChartPhoneNumber != "" &&
		!service.ValidRosterPhone(*req.DutyChartPhoneNumber) {
		return nil, errors.New("duty_chart_phone_number must be +977 followed by 10 digits")
	}

	row := &model.DutyChartModel{
		DutyChartOfficeID:      req.DutyChartOfficeID,
		DutyChartEffectiveDate: effective,
		DutyChartEmployeeName:  req.DutyChartEmployeeName,
		DutyChartPhoneNumber:   req.DutyChartPhoneNumber,
	}

	if req.DutyChartEndDate != nil {
		end, err := dto.DatePtr(*req.DutyChartEndDate)
		if err != nil {
			return nil, errors.New("duty_chart_end_date: " + err.Error())
		}
		if end != nil && end.Before(effective) {
			return nil, errors.New("duty_chart_end_date must be on or after duty_chart_effective_date")
		}
		row.DutyChartEndDate = end
	}

	var n int64
	if err := ctl.DB.Model(&orgModel.OfficeModel{}).
		Where("office_id = ?", req.DutyChartOfficeID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errors.New("Office not found")
	}
	return row, nil
}
