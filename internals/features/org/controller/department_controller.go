// file: internals/features/org/controller/department_controller.go
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

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB, v *validator.Validate) *DepartmentController {
	return &DepartmentController{DB: db, Validate: v}
}

func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.DepartmentModel{})
	// ?directorate= filters children of one directorate
	if v := c.QueryInt("directorate"); v > 0 {
		db = db.Where("department_directorate_id = ?", v)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.DepartmentModel
	if err := db.Preload("Directorate").
		Order("department_name ASC").Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.DepartmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewDepartmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(p, total, len(items)),
	})
}

func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var row model.DepartmentModel
	if err := ctl.DB.Preload("Directorate").First(&row, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Department not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewDepartmentResponse(&row))
}

func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// parent must exist
	var n int64
	if err := ctl.DB.Model(&model.DirectorateModel{}).
		Where("directorate_id = ?", req.DepartmentDirectorateID).Count(&n).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.Error(c, http.StatusBadRequest, "Directorate not found")
	}

	row := model.DepartmentModel{
		DepartmentName:          req.DepartmentName,
		DepartmentDirectorateID: req.DepartmentDirectorateID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Department created", dto.NewDepartmentResponse(&row))
}

func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.DepartmentModel
	if err := ctl.DB.First(&row, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Department not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	row.DepartmentName = req.DepartmentName
	row.DepartmentDirectorateID = req.DepartmentDirectorateID
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Department updated", dto.NewDepartmentResponse(&row))
}

func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Department not found")
	}
	return helper.Success(c, "Department deleted", nil)
}
