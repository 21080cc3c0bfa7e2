package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkController "sekolahku_backend/internals/features/identity/uniqueness/controller"
)

func IdentityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := checkController.NewIdentityCheckController(db, v)

	g := admin.Group("/identity")
	g.Post("/check", ctl.Check)
}
