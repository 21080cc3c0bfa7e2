// file: internals/features/transport/drivers/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	driverController "sekolahku_backend/internals/features/transport/drivers/controller"
)

func TransportAdminRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := driverController.NewDriverController(db, v)

	drivers := api.Group("/transport/drivers")
	drivers.Post("/", ctl.Create)
	drivers.Get("/", ctl.List)
	drivers.Put("/:driver_id", ctl.Update)
	drivers.Delete("/:driver_id", ctl.Delete)
}
