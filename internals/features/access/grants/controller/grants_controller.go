// file: internals/features/access/grants/controller/grants_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	grantDto "sekolahku_backend/internals/features/access/grants/dto"
	grantModel "sekolahku_backend/internals/features/access/grants/model"
	helper "sekolahku_backend/internals/helpers"
)

type GrantsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGrantsController(db *gorm.DB, v *validator.Validate) *GrantsController {
	return &GrantsController{DB: db, Validate: v}
}

// PUT /api/a/grants/class-access
// Simpan grant per-kelas untuk satu user: delete lama + insert baru
// dalam satu transaksi (bulk replace, bukan merge).
func (ctl *GrantsController) SaveClassAccess(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req grantDto.ClassAccessSaveReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows := req.ToModels(schoolID)
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_access_school_id = ? AND class_access_user_id = ?", schoolID, req.UserID).
			Delete(&grantModel.ClassAccessModel{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan akses kelas")
	}

	return helper.JsonUpdated(c, "Akses kelas disimpan", rows)
}

// GET /api/a/grants/class-access/:user_id
func (ctl *GrantsController) ListClassAccess(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []grantModel.ClassAccessModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_access_school_id = ? AND class_access_user_id = ?", schoolID, userID).
		Order("class_access_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akses kelas")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PUT /api/a/grants/staff-access
// Bulk replace pasangan (manager, staff), dipakai scope manage_selected.
func (ctl *GrantsController) SaveStaffAccess(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req grantDto.StaffAccessSaveReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows := req.ToModels(schoolID)
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_access_school_id = ? AND staff_access_manager_id = ?", schoolID, req.ManagerID).
			Delete(&grantModel.StaffAccessModel{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan akses staf")
	}

	return helper.JsonUpdated(c, "Akses staf disimpan", rows)
}

// GET /api/a/grants/staff-access/:manager_id
func (ctl *GrantsController) ListStaffAccess(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	managerID, err := helper.ParseUUIDParam(c, "manager_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []grantModel.StaffAccessModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("staff_access_school_id = ? AND staff_access_manager_id = ?", schoolID, managerID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akses staf")
	}
	return helper.JsonOK(c, "ok", rows)
}
