// file: internals/features/students/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	guardianController "sekolahku_backend/internals/features/students/guardians/controller"
)

func StudentsAdminRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := guardianController.NewGuardianController(db, v)

	students := api.Group("/students")
	students.Post("/", ctl.CreateStudent)
	students.Get("/", ctl.ListStudents)
	students.Post("/guardians", ctl.CreateGuardian)
	students.Get("/:student_id/guardians", ctl.ListGuardians)
}
