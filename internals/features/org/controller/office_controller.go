// file: internals/features/org/controller/office_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/org/dto"
	"dutychart_backend/internals/features/org/model"
	helper "dutychart_backend/internals/helpers"
)

type OfficeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOfficeController(db *gorm.DB, v *validator.Validate) *OfficeController {
	return &OfficeController{DB: db, Validate: v}
}

func (ctl *OfficeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.OfficeModel{})
	if v := c.QueryInt("department"); v > 0 {
		db = db.Where("office_department_id = ?", v)
	}
	// ?name= does a case-insensitive exact match, the same lookup the
	// roster import uses to resolve office cells
	if name := c.Query("name"); name != "" {
		db = db.Where("LOWER(office_name) = LOWER(?)", name)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.OfficeModel
	if err := db.Preload("Department.Directorate").
		Order("office_name ASC").Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.OfficeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewOfficeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *OfficeController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.OfficeModel
	if err := ctl.DB.Preload("Department.Directorate").First(&row, "office_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Office not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewOfficeResponse(&row))
}

func (ctl *OfficeController) Create(c *fiber.Ctx) error {
	var req dto.CreateOfficeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctl.DB.Model(&model.DepartmentModel{}).
		Where("department_id = ?", req.OfficeDepartmentID).Count(&n).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.Error(c, http.StatusBadRequest, "Department not found")
	}

	row := model.OfficeModel{
		OfficeName:         req.OfficeName,
		OfficeDepartmentID: req.OfficeDepartmentID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Office created", dto.NewOfficeResponse(&row))
}

func (ctl *OfficeController) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateOfficeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.OfficeModel
	if err := ctl.DB.First(&row, "office_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Office not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	row.OfficeName = req.OfficeName
	row.OfficeDepartmentID = req.OfficeDepartmentID
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Office updated", dto.NewOfficeResponse(&row))
}

func (ctl *OfficeController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.OfficeModel{}, "office_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Office not found")
	}
	return helper.Success(c, "Office deleted", nil)
}
