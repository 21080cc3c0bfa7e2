// file: internals/features/hr/payroll/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payrollController "sekolahku_backend/internals/features/hr/payroll/controller"
)

// PayrollUserRoutes: endpoint staf login biasa (bukan admin). Gate-nya
// scope modul payroll dari role caller, bukan role check global.
func PayrollUserRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := payrollController.NewPayrollController(db, v)

	payroll := api.Group("/payroll")
	payroll.Get("/my", ctl.MyPayslip)
	payroll.Get("/team", ctl.TeamPayslips)
}
