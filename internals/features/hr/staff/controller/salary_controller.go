// file: internals/features/hr/staff/controller/salary_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	staffDto "sekolahku_backend/internals/features/hr/staff/dto"
	staffModel "sekolahku_backend/internals/features/hr/staff/model"
	helper "sekolahku_backend/internals/helpers"
)

type SalaryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSalaryController(db *gorm.DB, v *validator.Validate) *SalaryController {
	return &SalaryController{DB: db, Validate: v}
}

// POST /api/a/staff/salary-revisions
// Revisi bersifat append-only: perubahan gaji = revisi baru dengan
// effective_from baru, bukan edit revisi lama.
func (ctl *SalaryController) CreateRevision(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req staffDto.SalaryRevisionCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan revisi gaji")
	}
	return helper.JsonCreated(c, "Revisi gaji dibuat", m)
}

// GET /api/a/staff/:staff_id/salary-revisions
func (ctl *SalaryController) ListRevisions(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	staffID, err := helper.ParseUUIDParam(c, "staff_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []staffModel.SalaryRevisionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("salary_revision_school_id = ? AND salary_revision_user_id = ?", schoolID, staffID).
		Order("salary_revision_effective_from DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil revisi gaji")
	}
	return helper.JsonOK(c, "ok", rows)
}

// PUT /api/a/staff/attendance-summaries
// Upsert rekap kehadiran per (user, bulan, tahun).
func (ctl *SalaryController) SaveAttendanceSummary(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req staffDto.AttendanceSummarySaveReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := staffModel.StaffAttendanceSummaryModel{
		StaffAttendanceSummarySchoolID:    schoolID,
		StaffAttendanceSummaryUserID:      req.UserID,
		StaffAttendanceSummaryMonth:       req.Month,
		StaffAttendanceSummaryYear:        req.Year,
		StaffAttendanceSummaryPresentDays: req.PresentDays,
		StaffAttendanceSummaryTotalDays:   req.TotalDays,
	}
	err = ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "staff_attendance_summary_user_id"},
				{Name: "staff_attendance_summary_month"},
				{Name: "staff_attendance_summary_year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"staff_attendance_summary_present_days",
				"staff_attendance_summary_total_days",
			}),
		}).
		Create(&m).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rekap kehadiran")
	}
	return helper.JsonUpdated(c, "Rekap kehadiran disimpan", m)
}
