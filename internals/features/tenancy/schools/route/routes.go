// file: internals/features/tenancy/schools/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "sekolahku_backend/internals/features/tenancy/contacts/controller"
	schoolController "sekolahku_backend/internals/features/tenancy/schools/controller"
)

// TenancyOwnerRoutes: manajemen tenant lintas sekolah (owner platform).
func TenancyOwnerRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := schoolController.NewSchoolController(db, v)

	schools := api.Group("/schools")
	schools.Post("/", ctl.Create)
	schools.Get("/", ctl.List)
}

// TenancyAdminRoutes: profil tenant sendiri, cabang, dan kontak sekolah.
func TenancyAdminRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	schoolCtl := schoolController.NewSchoolController(db, v)
	contactCtl := contactController.NewContactController(db, v)

	api.Get("/school", schoolCtl.GetMine)

	branches := api.Group("/branches")
	branches.Post("/", schoolCtl.CreateBranch)
	branches.Get("/", schoolCtl.ListBranches)
	branches.Delete("/:branch_id", schoolCtl.DeleteBranch)

	contacts := api.Group("/contacts")
	contacts.Post("/", contactCtl.Create)
	contacts.Get("/", contactCtl.List)
	contacts.Put("/:contact_id", contactCtl.Update)
	contacts.Delete("/:contact_id", contactCtl.Delete)
}
