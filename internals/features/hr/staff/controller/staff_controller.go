// file: internals/features/hr/staff/controller/staff_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	accessService "sekolahku_backend/internals/features/access/roles/service"
	staffDto "sekolahku_backend/internals/features/hr/staff/dto"
	staffModel "sekolahku_backend/internals/features/hr/staff/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	driverModel "sekolahku_backend/internals/features/transport/drivers/model"
	helper "sekolahku_backend/internals/helpers"
)

type StaffController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *uniq.Resolver
}

func NewStaffController(db *gorm.DB, v *validator.Validate) *StaffController {
	return &StaffController{DB: db, Validate: v, Resolver: uniq.NewResolver(db)}
}

// preflight satu identitas; mengembalikan *fiber.Error siap render kalau
// nilai terpakai dan tidak linkable. Driver linkable dilaporkan lewat
// return kedua (id driver) supaya caller bisa me-link.
func (ctl *StaffController) preflight(c *fiber.Ctx, q uniq.Query) (*uniq.Result, error) {
	res, err := ctl.Resolver.Resolve(c.UserContext(), q)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek keunikan identitas")
	}
	if !res.Exists || res.Linkable {
		return &res, nil
	}
	return nil, fiber.NewError(fiber.StatusConflict, "Nilai sudah dipakai — "+res.Description)
}

// POST /api/a/staff
func (ctl *StaffController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req staffDto.StaffCreateReq
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

	// Pre-flight uniqueness (best effort; unique index DB tetap otoritatif)
	var linkDriver *uniq.Result
	if req.StaffUserPhone != nil {
		res, ferr := ctl.preflight(c, uniq.Query{
			Kind: uniq.KindPhone, Value: *req.StaffUserPhone,
			SchoolID: schoolID, ForOwnerType: uniq.OwnerStaffUser,
		})
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		if res.Linkable {
			if !req.LinkDriver {
				return helper.JsonError(c, fiber.StatusConflict,
					"Nomor dipakai driver transport di sekolah ini — kirim link_driver=true untuk me-link ("+res.Description+")")
			}
			linkDriver = res
		}
	}
	if req.StaffUserEmail != nil {
		if _, ferr := ctl.preflight(c, uniq.Query{
			Kind: uniq.KindEmail, Value: *req.StaffUserEmail,
			SchoolID: schoolID, ForOwnerType: uniq.OwnerStaffUser,
		}); ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.StaffUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel(schoolID, hash)
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// Tabrakan driver linkable: set cross-reference, bukan reject.
		if linkDriver != nil {
			if err := tx.Model(&driverModel.TransportDriverModel{}).
				Where("transport_driver_id = ?", linkDriver.OwnerID).
				Update("transport_driver_user_id", m.StaffUserID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		// Race check-vs-write: constraint unik DB menang, laporkan sebagai konflik biasa.
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan staf")
	}

	return helper.JsonCreated(c, "Staf dibuat", m)
}

// PUT /api/a/staff/:staff_id
func (ctl *StaffController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	staffID, err := helper.ParseUUIDParam(c, "staff_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req staffDto.StaffUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m staffModel.StaffUserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("staff_user_id = ? AND staff_user_school_id = ?", staffID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staf tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil staf")
	}

	// Pre-flight dengan ExcludeOwner = record yang sedang diedit
	if req.StaffUserPhone != nil {
		if _, ferr := ctl.preflight(c, uniq.Query{
			Kind: uniq.KindPhone, Value: *req.StaffUserPhone,
			SchoolID: schoolID, ExcludeOwner: &staffID, ForOwnerType: uniq.OwnerStaffUser,
		}); ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
	}
	if req.StaffUserEmail != nil {
		if _, ferr := ctl.preflight(c, uniq.Query{
			Kind: uniq.KindEmail, Value: *req.StaffUserEmail,
			SchoolID: schoolID, ExcludeOwner: &staffID, ForOwnerType: uniq.OwnerStaffUser,
		}); ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
	}

	updates := map[string]any{
		"staff_user_name":      req.StaffUserName,
		"staff_user_phone":     req.StaffUserPhone,
		"staff_user_email":     req.StaffUserEmail,
		"staff_user_branch_id": req.StaffUserBranchID,
		"staff_user_role_id":   req.StaffUserRoleID,
		"staff_user_position":  req.StaffUserPosition,
	}
	if req.StaffUserIsActive != nil {
		updates["staff_user_is_active"] = *req.StaffUserIsActive
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui staf")
	}
	return helper.JsonUpdated(c, "Staf diperbarui", m)
}

// GET /api/a/staff
// Daftar staf dengan filter branch yang dievaluasi SEBELUM filter modul:
// pemanggil dengan branch hanya melihat branch-nya.
func (ctl *StaffController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	branchID := helper.GetBranchIDFromToken(c)
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&staffModel.StaffUserModel{}).
		Where("staff_user_school_id = ?", schoolID).
		Scopes(accessService.BranchScope(branchID, "staff_user_branch_id"))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung staf")
	}

	var rows []staffModel.StaffUserModel
	if err := base.Order("staff_user_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar staf")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/staff/:staff_id
func (ctl *StaffController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	staffID, err := helper.ParseUUIDParam(c, "staff_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m staffModel.StaffUserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("staff_user_id = ? AND staff_user_school_id = ?", staffID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Staf tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil staf")
	}
	return helper.JsonOK(c, "ok", m)
}

// DELETE /api/a/staff/:staff_id (soft delete)
func (ctl *StaffController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	staffID, err := helper.ParseUUIDParam(c, "staff_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("staff_user_id = ? AND staff_user_school_id = ?", staffID, schoolID).
		Delete(&staffModel.StaffUserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus staf")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Staf tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Staf dihapus", fiber.Map{"staff_user_id": staffID})
}
