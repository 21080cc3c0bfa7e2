// file: internals/features/finance/billing/controller/billing_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingDto "sekolahku_backend/internals/features/finance/billing/dto"
	billingModel "sekolahku_backend/internals/features/finance/billing/model"
	billingService "sekolahku_backend/internals/features/finance/billing/service"
	schoolModel "sekolahku_backend/internals/features/tenancy/schools/model"
	helper "sekolahku_backend/internals/helpers"
)

type BillingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBillingController(db *gorm.DB, v *validator.Validate) *BillingController {
	return &BillingController{DB: db, Validate: v}
}

// POST /api/o/billing/invoices, owner platform menagih satu sekolah.
func (ctl *BillingController) CreateInvoice(c *fiber.Ctx) error {
	var req billingDto.InvoiceCreateReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", req.SubscriptionInvoiceSchoolID).
		First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	inv := billingModel.SubscriptionInvoiceModel{
		SubscriptionInvoiceSchoolID:    req.SubscriptionInvoiceSchoolID,
		SubscriptionInvoiceOrderID:     fmt.Sprintf("SUB-%d", time.Now().UnixNano()),
		SubscriptionInvoiceAmount:      req.SubscriptionInvoiceAmount,
		SubscriptionInvoicePeriodMonth: req.SubscriptionInvoicePeriodMonth,
		SubscriptionInvoicePeriodYear:  req.SubscriptionInvoicePeriodYear,
		SubscriptionInvoiceStatus:      billingModel.InvoiceStatusPending,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&inv).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
	}

	token, err := billingService.GenerateSnapToken(inv, school.SchoolName, req.BillingEmail)
	if err != nil {
		log.Printf("[BILLING] gagal membuat snap token order %s: %v", inv.SubscriptionInvoiceOrderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}
	inv.SubscriptionInvoicePaymentToken = &token
	ctl.DB.WithContext(c.UserContext()).Save(&inv)

	return helper.JsonCreated(c, "Tagihan dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"subscription_invoice_id": inv.SubscriptionInvoiceID,
		"order_id":                inv.SubscriptionInvoiceOrderID,
		"snap_token":              token,
	})
}

// GET /api/a/billing/invoices, tagihan tenant sendiri.
func (ctl *BillingController) ListMine(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []billingModel.SubscriptionInvoiceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subscription_invoice_school_id = ?", schoolID).
		Order("subscription_invoice_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/billing/webhook, notifikasi Midtrans (tanpa auth internal,
// endpoint-nya yang didaftarkan ke dashboard Midtrans).
func (ctl *BillingController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	orderID, ok := body["order_id"].(string)
	if !ok || orderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id wajib ada")
	}
	status, _ := body["transaction_status"].(string)

	if err := billingService.ApplyPaymentNotification(ctl.DB.WithContext(c.UserContext()), orderID, status); err != nil {
		log.Printf("[BILLING] webhook order %s gagal: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"order_id": orderID})
}
