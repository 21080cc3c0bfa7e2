// file: internals/features/finance/billing/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingController "sekolahku_backend/internals/features/finance/billing/controller"
)

// BillingPublicRoutes: webhook Midtrans, dipanggil dari luar tanpa JWT.
func BillingPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := billingController.NewBillingController(db, validator.New())
	api.Post("/billing/webhook", ctl.Webhook)
}

// BillingAdminRoutes: tagihan tenant sendiri.
func BillingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := billingController.NewBillingController(db, validator.New())
	api.Get("/billing/invoices", ctl.ListMine)
}

// BillingOwnerRoutes: owner platform membuat tagihan.
func BillingOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := billingController.NewBillingController(db, validator.New())
	api.Post("/billing/invoices", ctl.CreateInvoice)
}
