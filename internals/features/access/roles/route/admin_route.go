package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	grantController "sekolahku_backend/internals/features/access/grants/controller"
	roleController "sekolahku_backend/internals/features/access/roles/controller"
)

func AccessAdminRoutes(admin fiber.Router, db *gorm.DB) {
	v := validator.New()
	roleCtl := roleController.NewRoleController(db, v)
	grantCtl := grantController.NewGrantsController(db, v)

	// ===== ROLES =====
	r := admin.Group("/roles")
	r.Post("/", roleCtl.Create)
	r.Get("/", roleCtl.List)
	r.Get("/:role_id", roleCtl.GetByID)
	r.Put("/:role_id", roleCtl.Update)
	r.Delete("/:role_id", roleCtl.Delete)

	// ===== GRANTS =====
	g := admin.Group("/grants")
	g.Put("/class-access", grantCtl.SaveClassAccess)
	g.Get("/class-access/:user_id", grantCtl.ListClassAccess)
	g.Put("/staff-access", grantCtl.SaveStaffAccess)
	g.Get("/staff-access/:manager_id", grantCtl.ListStaffAccess)
}
