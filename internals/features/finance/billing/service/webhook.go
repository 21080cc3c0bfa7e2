// file: internals/features/finance/billing/service/webhook.go
package service

import (
	"fmt"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/finance/billing/model"
)

// ApplyPaymentNotification memetakan status transaksi Midtrans ke status
// tagihan. Notifikasi status yang tidak dikenal dibiarkan pending.
func ApplyPaymentNotification(db *gorm.DB, orderID string, transactionStatus string) error {
	var inv model.SubscriptionInvoiceModel
	if err := db.Where("subscription_invoice_order_id = ?", orderID).First(&inv).Error; err != nil {
		return fmt.Errorf("tagihan tidak ditemukan: %w", err)
	}

	switch transactionStatus {
	case "capture", "settlement":
		inv.SubscriptionInvoiceStatus = model.InvoiceStatusPaid
	case "expire", "cancel", "deny":
		inv.SubscriptionInvoiceStatus = model.InvoiceStatusCanceled
	default:
		inv.SubscriptionInvoiceStatus = model.InvoiceStatusPending
	}

	if err := db.Save(&inv).Error; err != nil {
		return fmt.Errorf("gagal memperbarui status tagihan: %w", err)
	}
	return nil
}
