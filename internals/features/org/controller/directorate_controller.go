// file: internals/features/org/controller/directorate_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/org/dto"
	"dutychart_backend/internals/features/org/model"
	helper "dutychart_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type DirectorateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDirectorateController(db *gorm.DB, v *validator.Validate) *DirectorateController {
	return &DirectorateController{DB: db, Validate: v}
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

func (ctl *DirectorateController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	db := ctl.DB.Model(&model.DirectorateModel{})
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.DirectorateModel
	if err := db.Order("directorate_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.DirectorateResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewDirectorateResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *DirectorateController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.DirectorateModel
	if err := ctl.DB.First(&row, "directorate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Directorate not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewDirectorateResponse(&row))
}

func (ctl *DirectorateController) Create(c *fiber.Ctx) error {
	var req dto.CreateDirectorateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.DirectorateModel{DirectorateName: req.DirectorateName}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Directorate created", dto.NewDirectorateResponse(&row))
}

func (ctl *DirectorateController) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateDirectorateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.DirectorateModel
	if err := ctl.DB.First(&row, "directorate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Directorate not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	row.DirectorateName = req.DirectorateName
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Directorate updated", dto.NewDirectorateResponse(&row))
}

func (ctl *DirectorateController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.DirectorateModel{}, "directorate_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Directorate not found")
	}
	return helper.Success(c, "Directorate deleted", nil)
}
