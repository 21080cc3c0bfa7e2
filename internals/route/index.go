// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessRoute "sekolahku_backend/internals/features/access/roles/route"
	admissionsRoute "sekolahku_backend/internals/features/admissions/route"
	billingRoute "sekolahku_backend/internals/features/finance/billing/route"
	payrollRoute "sekolahku_backend/internals/features/hr/payroll/route"
	staffRoute "sekolahku_backend/internals/features/hr/staff/route"
	identityRoute "sekolahku_backend/internals/features/identity/uniqueness/route"
	studentsRoute "sekolahku_backend/internals/features/students/route"
	tenancyRoute "sekolahku_backend/internals/features/tenancy/schools/route"
	transportRoute "sekolahku_backend/internals/features/transport/drivers/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// PUBLIC → tanpa JWT (webhook pembayaran)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	billingRoute.BillingPublicRoutes(public, db)

	// ===================== ADMIN (per sekolah) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authJWT,
		authMiddleware.IsSchoolAdmin("admin sekolah"),
	)

	log.Println("[INFO] Mounting Tenancy routes...")
	tenancyRoute.TenancyAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Identity routes...")
	identityRoute.IdentityAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Access routes...")
	accessRoute.AccessAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Staff & Payroll routes...")
	staffRoute.StaffAdminRoutes(admin, db)
	payrollRoute.PayrollAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Admissions routes...")
	admissionsRoute.AdmissionsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Students routes...")
	studentsRoute.StudentsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Transport routes...")
	transportRoute.TransportAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Billing (tenant) routes...")
	billingRoute.BillingAdminRoutes(admin, db)

	// ===================== USER (staf login) =====================
	// Tanpa role check global; tiap endpoint menurunkan scope modulnya
	// sendiri dari role caller.
	log.Println("[INFO] Setting up USER group (Auth only)...")
	user := app.Group("/api/u", authJWT)
	payrollRoute.PayrollUserRoutes(user, db)

	// ===================== OWNER (GLOBAL) =====================
	log.Println("[INFO] Setting up OWNER group (Auth + owner global)...")
	owner := app.Group("/api/o",
		authJWT,
		authMiddleware.IsOwnerGlobal(),
	)
	tenancyRoute.TenancyOwnerRoutes(owner, db)
	billingRoute.BillingOwnerRoutes(owner, db)
}
