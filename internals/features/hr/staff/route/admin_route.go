// file: internals/features/hr/staff/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffController "sekolahku_backend/internals/features/hr/staff/controller"
)

func StaffAdminRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	staffCtl := staffController.NewStaffController(db, v)
	salaryCtl := staffController.NewSalaryController(db, v)

	staff := api.Group("/staff")
	staff.Post("/", staffCtl.Create)
	staff.Get("/", staffCtl.List)

	// Sub-resource gaji & kehadiran didaftarkan sebelum rute :staff_id
	// supaya path statis tidak tertelan parameter.
	staff.Post("/salary-revisions", salaryCtl.CreateRevision)
	staff.Put("/attendance-summaries", salaryCtl.SaveAttendanceSummary)
	staff.Get("/:staff_id/salary-revisions", salaryCtl.ListRevisions)

	staff.Get("/:staff_id", staffCtl.GetByID)
	staff.Put("/:staff_id", staffCtl.Update)
	staff.Delete("/:staff_id", staffCtl.Delete)
}
