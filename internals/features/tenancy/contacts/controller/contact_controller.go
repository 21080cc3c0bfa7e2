// file: internals/features/tenancy/contacts/controller/contact_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	contactDto "sekolahku_backend/internals/features/tenancy/contacts/dto"
	contactModel "sekolahku_backend/internals/features/tenancy/contacts/model"
	helper "sekolahku_backend/internals/helpers"
)

type ContactController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *uniq.Resolver
}

func NewContactController(db *gorm.DB, v *validator.Validate) *ContactController {
	return &ContactController{DB: db, Validate: v, Resolver: uniq.NewResolver(db)}
}

func (ctl *ContactController) preflight(c *fiber.Ctx, kind uniq.Kind, value string, exclude *uuid.UUID) error {
	res, err := ctl.Resolver.Resolve(c.UserContext(), uniq.Query{
		Kind: kind, Value: value,
		ExcludeOwner: exclude, ForOwnerType: uniq.OwnerSchoolContact,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek keunikan identitas")
	}
	if res.Exists {
		return fiber.NewError(fiber.StatusConflict, "Nilai sudah dipakai — "+res.Description)
	}
	return nil
}

// POST /api/a/contacts
func (ctl *ContactController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req contactDto.ContactSaveReq
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

	if req.SchoolContactPhone != nil {
		if err := ctl.preflight(c, uniq.KindPhone, *req.SchoolContactPhone, nil); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.SchoolContactEmail != nil {
		if err := ctl.preflight(c, uniq.KindEmail, *req.SchoolContactEmail, nil); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kontak")
	}
	return helper.JsonCreated(c, "Kontak dibuat", m)
}

// PUT /api/a/contacts/:contact_id
func (ctl *ContactController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	contactID, err := helper.ParseUUIDParam(c, "contact_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req contactDto.ContactSaveReq
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

	var m contactModel.SchoolContactModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_contact_id = ? AND school_contact_school_id = ?", contactID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kontak")
	}

	if req.SchoolContactPhone != nil {
		if err := ctl.preflight(c, uniq.KindPhone, *req.SchoolContactPhone, &contactID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.SchoolContactEmail != nil {
		if err := ctl.preflight(c, uniq.KindEmail, *req.SchoolContactEmail, &contactID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	updates := map[string]any{
		"school_contact_name":  req.SchoolContactName,
		"school_contact_role":  req.SchoolContactRole,
		"school_contact_phone": req.SchoolContactPhone,
		"school_contact_email": req.SchoolContactEmail,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kontak")
	}
	return helper.JsonUpdated(c, "Kontak diperbarui", m)
}

// GET /api/a/contacts
func (ctl *ContactController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []contactModel.SchoolContactModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_contact_school_id = ?", schoolID).
		Order("school_contact_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kontak")
	}
	return helper.JsonOK(c, "ok", rows)
}

// DELETE /api/a/contacts/:contact_id (soft delete)
func (ctl *ContactController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	contactID, err := helper.ParseUUIDParam(c, "contact_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("school_contact_id = ? AND school_contact_school_id = ?", contactID, schoolID).
		Delete(&contactModel.SchoolContactModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kontak")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kontak tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kontak dihapus", fiber.Map{"school_contact_id": contactID})
}
