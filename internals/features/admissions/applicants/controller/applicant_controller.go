// file: internals/features/admissions/applicants/controller/applicant_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicantDto "sekolahku_backend/internals/features/admissions/applicants/dto"
	applicantModel "sekolahku_backend/internals/features/admissions/applicants/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	helper "sekolahku_backend/internals/helpers"
)

type ApplicantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *uniq.Resolver
}

func NewApplicantController(db *gorm.DB, v *validator.Validate) *ApplicantController {
	return &ApplicantController{DB: db, Validate: v, Resolver: uniq.NewResolver(db)}
}

// POST /api/a/admissions/applicants
func (ctl *ApplicantController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req applicantDto.ApplicantCreateReq
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
			SchoolID: schoolID, ForOwnerType: uniq.OwnerJobApplicant,
		})
		if rerr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek keunikan identitas")
		}
		if res.Exists {
			return fiber.NewError(fiber.StatusConflict, "Nilai sudah dipakai — "+res.Description)
		}
		return nil
	}
	if req.JobApplicantPhone != nil {
		if err := check(uniq.KindPhone, *req.JobApplicantPhone); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.JobApplicantEmail != nil {
		if err := check(uniq.KindEmail, *req.JobApplicantEmail); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pelamar")
	}
	return helper.JsonCreated(c, "Pelamar dibuat", m)
}

// PATCH /api/a/admissions/applicants/:applicant_id/status
func (ctl *ApplicantController) UpdateStatus(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	applicantID, err := helper.ParseUUIDParam(c, "applicant_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req applicantDto.ApplicantStatusReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&applicantModel.JobApplicantModel{}).
		Where("job_applicant_id = ? AND job_applicant_school_id = ?", applicantID, schoolID).
		Update("job_applicant_status", req.JobApplicantStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelamar tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status diperbarui", fiber.Map{
		"job_applicant_id":     applicantID,
		"job_applicant_status": req.JobApplicantStatus,
	})
}

// GET /api/a/admissions/applicants
func (ctl *ApplicantController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&applicantModel.JobApplicantModel{}).
		Where("job_applicant_school_id = ?", schoolID)
	if status := c.Query("status"); status != "" {
		base = base.Where("job_applicant_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pelamar")
	}

	var rows []applicantModel.JobApplicantModel
	if err := base.Order("job_applicant_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pelamar")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
