// file: internals/features/admissions/inquiries/controller/inquiry_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryDto "sekolahku_backend/internals/features/admissions/inquiries/dto"
	inquiryModel "sekolahku_backend/internals/features/admissions/inquiries/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	helper "sekolahku_backend/internals/helpers"
)

type InquiryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *uniq.Resolver
}

func NewInquiryController(db *gorm.DB, v *validator.Validate) *InquiryController {
	return &InquiryController{DB: db, Validate: v, Resolver: uniq.NewResolver(db)}
}

// POST /api/a/admissions/inquiries
// Tiap nomor (ortu utama/cadangan/ayah/ibu) dan email dicek satu-satu.
func (ctl *InquiryController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req inquiryDto.InquiryCreateReq
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

	check := func(kind uniq.Kind, value string) error {
		res, rerr := ctl.Resolver.Resolve(c.UserContext(), uniq.Query{
			Kind: kind, Value: value,
			SchoolID: schoolID, ForOwnerType: uniq.OwnerAdmissionInquiry,
		})
		if rerr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek keunikan identitas")
		}
		if res.Exists {
			return fiber.NewError(fiber.StatusConflict, "Nilai sudah dipakai — "+res.Description)
		}
		return nil
	}
	for _, phone := range req.Phones() {
		if err := check(uniq.KindPhone, phone); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.AdmissionInquiryParentEmail != nil {
		if err := check(uniq.KindEmail, *req.AdmissionInquiryParentEmail); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}
	return helper.JsonCreated(c, "Pendaftaran dibuat", m)
}

// PATCH /api/a/admissions/inquiries/:inquiry_id/status
func (ctl *InquiryController) UpdateStatus(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	inquiryID, err := helper.ParseUUIDParam(c, "inquiry_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req inquiryDto.InquiryStatusReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&inquiryModel.AdmissionInquiryModel{}).
		Where("admission_inquiry_id = ? AND admission_inquiry_school_id = ?", inquiryID, schoolID).
		Update("admission_inquiry_status", req.AdmissionInquiryStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status diperbarui", fiber.Map{
		"admission_inquiry_id":     inquiryID,
		"admission_inquiry_status": req.AdmissionInquiryStatus,
	})
}

// GET /api/a/admissions/inquiries
func (ctl *InquiryController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&inquiryModel.AdmissionInquiryModel{}).
		Where("admission_inquiry_school_id = ?", schoolID)
	if status := c.Query("status"); status != "" {
		base = base.Where("admission_inquiry_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}

	var rows []inquiryModel.AdmissionInquiryModel
	if err := base.Order("admission_inquiry_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pendaftaran")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/admissions/inquiries/:inquiry_id
func (ctl *InquiryController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	inquiryID, err := helper.ParseUUIDParam(c, "inquiry_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m inquiryModel.AdmissionInquiryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("admission_inquiry_id = ? AND admission_inquiry_school_id = ?", inquiryID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}
	return helper.JsonOK(c, "ok", m)
}
