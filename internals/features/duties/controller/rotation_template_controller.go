// file: internals/features/duties/controller/rotation_template_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dutychart_backend/internals/features/duties/dto"
	"dutychart_backend/internals/features/duties/model"
	helper "dutychart_backend/internals/helpers"
)

type RotationTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRotationTemplateController(db *gorm.DB, v *validator.Validate) *RotationTemplateController {
	return &RotationTemplateController{DB: db, Validate: v}
}

func (ctl *RotationTemplateController) List(c *fiber.Ctx) error {
	var rows []model.RotationTemplateModel
	if err := ctl.DB.Order("rotation_template_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *RotationTemplateController) Create(c *fiber.Ctx) error {
	var req dto.CreateRotationTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.RotationTemplateModel{
		RotationTemplateName:    req.RotationTemplateName,
		RotationTemplatePattern: req.RotationTemplatePattern,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusConflict, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Rotation template created", row)
}

func (ctl *RotationTemplateController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.RotationTemplateModel{}, "rotation_template_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Rotation template not found")
	}
	return helper.Success(c, "Rotation template deleted", nil)
}
