// file: internals/features/hr/payroll/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payrollController "sekolahku_backend/internals/features/hr/payroll/controller"
	"sekolahku_backend/internals/middlewares"
)

func PayrollAdminRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := payrollController.NewPayrollController(db, v)

	payroll := api.Group("/payroll")
	payroll.Get("/", ctl.ListPeriod)
	// Generate berat (hitung ulang satu periode), rate limit khusus.
	payroll.Post("/generate", middlewares.PayrollGenerateRateLimiter(), ctl.Generate)
	payroll.Post("/mark-paid", ctl.MarkPaid)
}
