// file: internals/features/tenancy/schools/controller/school_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDto "sekolahku_backend/internals/features/tenancy/schools/dto"
	schoolModel "sekolahku_backend/internals/features/tenancy/schools/model"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validate: v}
}

// POST /api/o/schools, hanya owner platform yang boleh bikin tenant baru.
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDto.SchoolCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug sekolah sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sekolah")
	}
	return helper.JsonCreated(c, "Sekolah dibuat", m)
}

// GET /api/o/schools
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).Model(&schoolModel.SchoolModel{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sekolah")
	}

	var rows []schoolModel.SchoolModel
	if err := base.Order("school_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sekolah")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/school, profil tenant milik pemanggil.
func (ctl *SchoolController) GetMine(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m schoolModel.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}
	return helper.JsonOK(c, "ok", m)
}

/* ===================== BRANCHES ===================== */

// POST /api/a/branches
func (ctl *SchoolController) CreateBranch(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req schoolDto.BranchCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat cabang")
	}
	return helper.JsonCreated(c, "Cabang dibuat", m)
}

// GET /api/a/branches
func (ctl *SchoolController) ListBranches(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []schoolModel.BranchModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("branch_school_id = ?", schoolID).
		Order("branch_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar cabang")
	}
	return helper.JsonOK(c, "ok", rows)
}

// DELETE /api/a/branches/:branch_id (soft delete)
func (ctl *SchoolController) DeleteBranch(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	branchID, err := helper.ParseUUIDParam(c, "branch_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("branch_id = ? AND branch_school_id = ?", branchID, schoolID).
		Delete(&schoolModel.BranchModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus cabang")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cabang tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Cabang dihapus", fiber.Map{"branch_id": branchID})
}
