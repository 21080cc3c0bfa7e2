// file: internals/features/access/roles/controller/role_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roleDto "sekolahku_backend/internals/features/access/roles/dto"
	roleModel "sekolahku_backend/internals/features/access/roles/model"
	helper "sekolahku_backend/internals/helpers"
)

type RoleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoleController(db *gorm.DB, v *validator.Validate) *RoleController {
	return &RoleController{DB: db, Validate: v}
}

func parseRoleID(c *fiber.Ctx) (uuid.UUID, error) {
	s := strings.TrimSpace(c.Params("role_id"))
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "role_id pada path tidak valid")
	}
	return id, nil
}

// POST /api/a/roles
func (ctl *RoleController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req roleDto.RoleCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan role")
	}
	return helper.JsonCreated(c, "Role dibuat", roleDto.FromModel(m))
}

// PUT /api/a/roles/:role_id
// Permissions diganti utuh (bulk replace) supaya invariant eksklusivitas
// scope tidak tergantung state lama.
func (ctl *RoleController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	roleID, err := parseRoleID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req roleDto.RoleUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m roleModel.RoleModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ? AND role_school_id = ?", roleID, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Role tidak ditemukan")
			}
			return err
		}

		m.RoleName = req.RoleName
		m.RoleDescription = req.RoleDescription
		if err := tx.Model(&m).Updates(map[string]any{
			"role_name":        m.RoleName,
			"role_description": m.RoleDescription,
		}).Error; err != nil {
			return err
		}

		// bulk replace permissions
		if err := tx.Where("role_module_permission_role_id = ?", roleID).
			Delete(&roleModel.RoleModulePermissionModel{}).Error; err != nil {
			return err
		}
		fresh := req.ToModel(schoolID).RolePermissions
		for i := range fresh {
			fresh[i].RoleModulePermissionRoleID = roleID
		}
		if len(fresh) > 0 {
			if err := tx.Create(&fresh).Error; err != nil {
				return err
			}
		}
		m.RolePermissions = fresh
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "Role diperbarui", roleDto.FromModel(&m))
}

// GET /api/a/roles/:role_id
func (ctl *RoleController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	roleID, err := parseRoleID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m roleModel.RoleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("RolePermissions").
		Where("role_id = ? AND role_school_id = ?", roleID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Role tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil role")
	}
	return helper.JsonOK(c, "ok", roleDto.FromModel(&m))
}

// GET /api/a/roles
func (ctl *RoleController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&roleModel.RoleModel{}).
		Where("role_school_id = ?", schoolID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung role")
	}

	var rows []roleModel.RoleModel
	if err := base.Preload("RolePermissions").
		Order("role_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar role")
	}

	out := make([]roleDto.RoleResp, 0, len(rows))
	for i := range rows {
		out = append(out, roleDto.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// DELETE /api/a/roles/:role_id
func (ctl *RoleController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	roleID, err := parseRoleID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("role_id = ? AND role_school_id = ?", roleID, schoolID).
		Delete(&roleModel.RoleModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Role tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Role dihapus", fiber.Map{"role_id": roleID})
}
