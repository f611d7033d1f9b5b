// file: internals/features/duties/controller/duty_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/duties/dto"
	"dutychart_backend/internals/features/duties/model"
	helper "dutychart_backend/internals/helpers"
)

type DutyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDutyController(db *gorm.DB, v *validator.Validate) *DutyController {
	return &DutyController{DB: db, Validate: v}
}

/* =========================
   Query: List
   ========================= */

type listDutiesQuery struct {
	DutyChart uint   `query:"duty_chart"`
	Employee  string `query:"employee"`
	Date      string `query:"date"`  // YYYY-MM-DD
	Shift     string `query:"shift"` // morning|day|night
}

func (ctl *DutyController) List(c *fiber.Ctx) error {
	var q listDutiesQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&model.DutyModel{})
	if q.DutyChart > 0 {
		db = db.Where("duty_chart_id = ?", q.DutyChart)
	}
	if q.Employee != "" {
		db = db.Where("duty_employee_name ILIKE ?", "%"+q.Employee+"%")
	}
	if q.Date != "" {
		d, err := dto.ParseDate(q.Date)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "date invalid (YYYY-MM-DD)")
		}
		db = db.Where("duty_date = ?", d)
	}
	if q.Shift != "" {
		if !model.DutyShift(q.Shift).Valid() {
			return fiber.NewError(http.StatusBadRequest, "shift must be morning, day or night")
		}
		db = db.Where("duty_shift = ?", q.Shift)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.DutyModel
	if err := db.Preload("DutyChart.Office").
		Order("duty_date ASC, duty_shift ASC").Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.DutyResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewDutyResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *DutyController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.DutyModel
	if err := ctl.DB.Preload("DutyChart.Office").First(&row, "duty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Duty not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewDutyResponse(&row))
}

func (ctl *DutyController) Create(c *fiber.Ctx) error {
	var req dto.CreateDutyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.dutyFromRequest(&req)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Duty created", dto.NewDutyResponse(row))
}

func (ctl *DutyController) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateDutyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.DutyModel
	if err := ctl.DB.First(&existing, "duty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Duty not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	row, err := ctl.dutyFromRequest(&req)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	row.DutyID = existing.DutyID
	if err := ctl.DB.Save(row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Duty updated", dto.NewDutyResponse(row))
}

func (ctl *DutyController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.DutyModel{}, "duty_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Duty not found")
	}
	return helper.Success(c, "Duty deleted", nil)
}

// dutyFromRequest parses and applies the duty invariants: time ordering and
// the chart's effective period.
func (ctl *DutyController) dutyFromRequest(req *dto.CreateDutyRequest) (*model.DutyModel, error) {
	date, err := dto.ParseDate(req.DutyDate)
	if err != nil {
		return nil, errors.New("duty_date: " + err.Error())
	}
	startTime, err := dto.ParseTime(req.DutyStartTime)
	if err != nil {
		return nil, errors.New("duty_start_time: " + err.Error())
	}
	endTime, err := dto.ParseTime(req.DutyEndTime)
	if err != nil {
		return nil, errors.New("duty_end_time: " + err.Error())
	}
	if !endTime.After(startTime) {
		return nil, errors.New("duty_end_time must be after duty_start_time")
	}

	var chart model.DutyChartModel
	if err := ctl.DB.First(&chart, "duty_chart_id = ?", req.DutyChartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Duty chart not found")
		}
		return nil, err
	}
	if !chart.CoversDate(date) {
		return nil, errors.New("duty_date must be within the duty chart's effective period")
	}

	row := &model.DutyModel{
		DutyChartID:            req.DutyChartID,
		DutyEmployeeName:       req.DutyEmployeeName,
		DutyDate:               date,
		DutyShift:              model.DutyShift(req.DutyShift),
		DutyCurrentlyAvailable: true,
		DutyStartTime:          startTime,
		DutyEndTime:            endTime,
	}
	if req.DutyIsCompleted != nil {
		row.DutyIsCompleted = *req.DutyIsCompleted
	}
	if req.DutyAvailable != nil {
		row.DutyCurrentlyAvailable = *req.DutyAvailable
	}
	return row, nil
}
