// file: internals/features/admissions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicantController "sekolahku_backend/internals/features/admissions/applicants/controller"
	inquiryController "sekolahku_backend/internals/features/admissions/inquiries/controller"
)

func AdmissionsAdminRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	inquiryCtl := inquiryController.NewInquiryController(db, v)
	applicantCtl := applicantController.NewApplicantController(db, v)

	admissions := api.Group("/admissions")

	inquiries := admissions.Group("/inquiries")
	inquiries.Post("/", inquiryCtl.Create)
	inquiries.Get("/", inquiryCtl.List)
	inquiries.Get("/:inquiry_id", inquiryCtl.GetByID)
	inquiries.Patch("/:inquiry_id/status", inquiryCtl.UpdateStatus)

	applicants := admissions.Group("/applicants")
	applicants.Post("/", applicantCtl.Create)
	applicants.Get("/", applicantCtl.List)
	applicants.Patch("/:applicant_id/status", applicantCtl.UpdateStatus)
}
