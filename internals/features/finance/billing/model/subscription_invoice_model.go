// file: internals/features/finance/billing/model/subscription_invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusCanceled = "canceled"
)

// SubscriptionInvoiceModel: tagihan langganan platform per sekolah,
// dibayar lewat Midtrans Snap.
type SubscriptionInvoiceModel struct {
	SubscriptionInvoiceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subscription_invoice_id" json:"subscription_invoice_id"`
	SubscriptionInvoiceSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:subscription_invoice_school_id" json:"subscription_invoice_school_id"`

	SubscriptionInvoiceOrderID string `gorm:"type:varchar(64);not null;uniqueIndex;column:subscription_invoice_order_id" json:"subscription_invoice_order_id"`
	SubscriptionInvoiceAmount  int64  `gorm:"type:bigint;not null;column:subscription_invoice_amount" json:"subscription_invoice_amount"`

	SubscriptionInvoicePeriodMonth int `gorm:"type:int;not null;column:subscription_invoice_period_month" json:"subscription_invoice_period_month"`
	SubscriptionInvoicePeriodYear  int `gorm:"type:int;not null;column:subscription_invoice_period_year" json:"subscription_invoice_period_year"`

	SubscriptionInvoiceStatus       string  `gorm:"type:varchar(20);not null;default:'pending';column:subscription_invoice_status" json:"subscription_invoice_status"`
	SubscriptionInvoicePaymentToken *string `gorm:"type:varchar(120);column:subscription_invoice_payment_token" json:"subscription_invoice_payment_token,omitempty"`

	SubscriptionInvoiceCreatedAt time.Time `gorm:"column:subscription_invoice_created_at;autoCreateTime" json:"subscription_invoice_created_at"`
	SubscriptionInvoiceUpdatedAt time.Time `gorm:"column:subscription_invoice_updated_at;autoUpdateTime" json:"subscription_invoice_updated_at"`
}

func (SubscriptionInvoiceModel) TableName() string { return "subscription_invoices" }
