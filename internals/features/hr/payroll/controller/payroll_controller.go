// file: internals/features/hr/payroll/controller/payroll_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	accessService "sekolahku_backend/internals/features/access/roles/service"
	payrollDto "sekolahku_backend/internals/features/hr/payroll/dto"
	payrollService "sekolahku_backend/internals/features/hr/payroll/service"
	staffModel "sekolahku_backend/internals/features/hr/staff/model"
	helper "sekolahku_backend/internals/helpers"
)

type PayrollController struct {
	DB       *gorm.DB
	Service  *payrollService.PayrollService
	Access   *accessService.AccessService
	Validate *validator.Validate
}

func NewPayrollController(db *gorm.DB, v *validator.Validate) *PayrollController {
	return &PayrollController{
		DB:       db,
		Service:  payrollService.NewPayrollService(db),
		Access:   accessService.NewAccessService(db),
		Validate: v,
	}
}

func (ctl *PayrollController) parsePeriodBody(c *fiber.Ctx) (*payrollDto.PayrollPeriodReq, error) {
	var req payrollDto.PayrollPeriodReq
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// POST /api/a/payroll/generate
// Generate ulang selalu overwrite: payslip lama periode ini diganti.
func (ctl *PayrollController) Generate(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, err := ctl.parsePeriodBody(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.ValidationError(c, err)
	}

	n, err := ctl.Service.GeneratePeriod(c.UserContext(), schoolID, req.Month, req.Year)
	if err != nil {
		if errors.Is(err, payrollService.ErrNoAttendance) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate payroll")
	}
	return helper.JsonOK(c, "Payroll digenerate", fiber.Map{
		"month": req.Month, "year": req.Year, "payslips": n,
	})
}

// POST /api/a/payroll/mark-paid
func (ctl *PayrollController) MarkPaid(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, err := ctl.parsePeriodBody(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.ValidationError(c, err)
	}

	n, err := ctl.Service.MarkPeriodPaid(c.UserContext(), schoolID, req.Month, req.Year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai payroll terbayar")
	}
	// n=0 berarti semua sudah PAID (atau periode kosong), tetap sukses.
	return helper.JsonUpdated(c, "Payroll ditandai terbayar", fiber.Map{
		"month": req.Month, "year": req.Year, "updated": n,
	})
}

func parsePeriodQuery(c *fiber.Ctx) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Query month tidak valid")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Query year tidak valid")
	}
	return month, year, nil
}

// GET /api/a/payroll?month=&year=
func (ctl *PayrollController) ListPeriod(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	month, year, err := parsePeriodQuery(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctl.Service.ListPeriod(c.UserContext(), schoolID, month, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payroll")
	}
	return helper.JsonOK(c, "ok", rows)
}

// resolvePayrollScope: scope caller pada modul payroll. Owner selalu
// manage_all; staf lain lewat role-nya (staf tanpa role atau tidak
// terdaftar = none).
func (ctl *PayrollController) resolvePayrollScope(c *fiber.Ctx) (accessService.Scope, error) {
	if helper.IsOwnerFromToken(c) {
		return accessService.ScopeManageAll, nil
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return accessService.ScopeNone, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return accessService.ScopeNone, err
	}

	var staff staffModel.StaffUserModel
	err = ctl.DB.WithContext(c.UserContext()).
		Select("staff_user_role_id").
		Where("staff_user_id = ? AND staff_user_school_id = ?", userID, schoolID).
		Take(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accessService.ScopeNone, nil
	}
	if err != nil {
		return accessService.ScopeNone, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca data staf")
	}
	if staff.StaffUserRoleID == nil {
		return accessService.ScopeNone, nil
	}
	return ctl.Access.ResolveModuleScope(c.UserContext(), *staff.StaffUserRoleID, constants.ModulePayroll)
}

// GET /api/u/payroll/my?month=&year=
// Payslip milik sendiri; butuh scope payroll apa pun selain none.
func (ctl *PayrollController) MyPayslip(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	month, year, err := parsePeriodQuery(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	scope, err := ctl.resolvePayrollScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !scope.CanView() {
		return helper.JsonError(c, fiber.StatusForbidden, "Role Anda tidak punya akses modul payroll")
	}

	m, err := ctl.Service.GetUserPayslip(c.UserContext(), schoolID, userID, month, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payslip periode ini belum digenerate")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payslip")
	}
	return helper.JsonOK(c, "ok", m)
}

// GET /api/u/payroll/team?month=&year=
// Payslip staf dalam jangkauan scope caller: manage_own → diri sendiri,
// manage_selected → staf yang di-grant, view/manage → seluruh tenant.
func (ctl *PayrollController) TeamPayslips(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	month, year, err := parsePeriodQuery(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	scope, err := ctl.resolvePayrollScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !scope.CanView() {
		return helper.JsonError(c, fiber.StatusForbidden, "Role Anda tidak punya akses modul payroll")
	}

	set, err := ctl.Access.MaterializeStaffScope(c.UserContext(), scope, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menurunkan scope akses")
	}

	var rows any
	if set.All {
		rows, err = ctl.Service.ListPeriod(c.UserContext(), schoolID, month, year)
	} else {
		rows, err = ctl.Service.ListPeriodForUsers(c.UserContext(), schoolID, month, year, set.IDs)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil payroll")
	}
	return helper.JsonOK(c, "ok", rows)
}
