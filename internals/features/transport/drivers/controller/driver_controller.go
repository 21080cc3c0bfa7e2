// file: internals/features/transport/drivers/controller/driver_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	driverDto "sekolahku_backend/internals/features/transport/drivers/dto"
	driverModel "sekolahku_backend/internals/features/transport/drivers/model"
	helper "sekolahku_backend/internals/helpers"
)

type DriverController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *uniq.Resolver
}

func NewDriverController(db *gorm.DB, v *validator.Validate) *DriverController {
	return &DriverController{DB: db, Validate: v, Resolver: uniq.NewResolver(db)}
}

// POST /api/a/transport/drivers
// Arah kebalikan dari create staf: tabrakan dengan STAF di tenant yang sama
// linkable, driver baru menyimpan transport_driver_user_id ke staf tersebut.
func (ctl *DriverController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req driverDto.DriverCreateReq
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

	var linkStaffID *uuid.UUID
	check := func(kind uniq.Kind, value string) error {
		res, rerr := ctl.Resolver.Resolve(c.UserContext(), uniq.Query{
			Kind: kind, Value: value,
			SchoolID: schoolID, ForOwnerType: uniq.OwnerTransportDriver,
		})
		if rerr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek keunikan identitas")
		}
		if !res.Exists {
			return nil
		}
		if res.Linkable {
			if !req.LinkStaff {
				return fiber.NewError(fiber.StatusConflict,
					"Nilai dipakai staf di sekolah ini — kirim link_staff=true untuk me-link ("+res.Description+")")
			}
			id := res.OwnerID
			linkStaffID = &id
			return nil
		}
		return fiber.NewError(fiber.StatusConflict, "Nilai sudah dipakai — "+res.Description)
	}

	if req.TransportDriverPhone != nil {
		if err := check(uniq.KindPhone, *req.TransportDriverPhone); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.TransportDriverEmail != nil {
		if err := check(uniq.KindEmail, *req.TransportDriverEmail); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	m := req.ToModel(schoolID)
	m.TransportDriverUserID = linkStaffID
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan driver")
	}
	return helper.JsonCreated(c, "Driver dibuat", m)
}

// PUT /api/a/transport/drivers/:driver_id
func (ctl *DriverController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	driverID, err := helper.ParseUUIDParam(c, "driver_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req driverDto.DriverUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m driverModel.TransportDriverModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("transport_driver_id = ? AND transport_driver_school_id = ?", driverID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Driver tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil driver")
	}

	// Catatan: probe driver tidak menghormati ExcludeOwner, jadi resolver
	// akan melaporkan record ini sendiri. Cukup bandingkan manual.
	preflight := func(kind uniq.Kind, value string, current *string) error {
		if current != nil && *current == value {
			return nil
		}
		res, rerr := ctl.Resolver.Resolve(c.UserContext(), uniq.Query{
			Kind: kind, Value: value,
			SchoolID: schoolID, ForOwnerType: uniq.OwnerTransportDriver,
		})
		if rerr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek keunikan identitas")
		}
		if res.Exists && !res.Linkable {
			return fiber.NewError(fiber.StatusConflict, "Nilai sudah dipakai — "+res.Description)
		}
		return nil
	}
	if req.TransportDriverPhone != nil {
		if err := preflight(uniq.KindPhone, *req.TransportDriverPhone, m.TransportDriverPhone); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.TransportDriverEmail != nil {
		if err := preflight(uniq.KindEmail, *req.TransportDriverEmail, m.TransportDriverEmail); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	updates := map[string]any{
		"transport_driver_name":       req.TransportDriverName,
		"transport_driver_phone":      req.TransportDriverPhone,
		"transport_driver_email":      req.TransportDriverEmail,
		"transport_driver_license_no": req.TransportDriverLicenseNo,
	}
	if req.TransportDriverIsActive != nil {
		updates["transport_driver_is_active"] = *req.TransportDriverIsActive
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui driver")
	}
	return helper.JsonUpdated(c, "Driver diperbarui", m)
}

// GET /api/a/transport/drivers
func (ctl *DriverController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&driverModel.TransportDriverModel{}).
		Where("transport_driver_school_id = ?", schoolID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung driver")
	}

	var rows []driverModel.TransportDriverModel
	if err := base.Order("transport_driver_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar driver")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// DELETE /api/a/transport/drivers/:driver_id (soft delete)
func (ctl *DriverController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	driverID, err := helper.ParseUUIDParam(c, "driver_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("transport_driver_id = ? AND transport_driver_school_id = ?", driverID, schoolID).
		Delete(&driverModel.TransportDriverModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus driver")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Driver tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Driver dihapus", fiber.Map{"transport_driver_id": driverID})
}
