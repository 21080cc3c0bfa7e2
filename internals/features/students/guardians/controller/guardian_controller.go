// file: internals/features/students/guardians/controller/guardian_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	guardianDto "sekolahku_backend/internals/features/students/guardians/dto"
	guardianModel "sekolahku_backend/internals/features/students/guardians/model"
	helper "sekolahku_backend/internals/helpers"
)

type GuardianController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Resolver *uniq.Resolver
}

func NewGuardianController(db *gorm.DB, v *validator.Validate) *GuardianController {
	return &GuardianController{DB: db, Validate: v, Resolver: uniq.NewResolver(db)}
}

// POST /api/a/students
func (ctl *GuardianController) CreateStudent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req guardianDto.StudentCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return helper.JsonCreated(c, "Siswa dibuat", m)
}

// GET /api/a/students
func (ctl *GuardianController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 25, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&guardianModel.StudentModel{}).
		Where("student_school_id = ?", schoolID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []guardianModel.StudentModel
	if err := base.Order("student_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /api/a/students/guardians
// Wali tidak pernah linkable: tabrakan dengan entitas manapun = tolak.
func (ctl *GuardianController) CreateGuardian(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req guardianDto.GuardianCreateReq
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

	// Siswa harus ada di tenant yang sama
	var student guardianModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND student_school_id = ?", req.StudentGuardianStudentID, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	check := func(kind uniq.Kind, value string) error {
		res, rerr := ctl.Resolver.Resolve(c.UserContext(), uniq.Query{
			Kind: kind, Value: value,
			SchoolID: schoolID, ForOwnerType: uniq.OwnerStudentGuardian,
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
	if req.StudentGuardianParentEmail != nil {
		if err := check(uniq.KindEmail, *req.StudentGuardianParentEmail); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor/email baru saja dipakai record lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan wali")
	}
	return helper.JsonCreated(c, "Wali dibuat", m)
}

// GET /api/a/students/:student_id/guardians
func (ctl *GuardianController) ListGuardians(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []guardianModel.StudentGuardianModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_guardian_school_id = ? AND student_guardian_student_id = ?", schoolID, studentID).
		Order("student_guardian_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar wali")
	}
	return helper.JsonOK(c, "ok", rows)
}
