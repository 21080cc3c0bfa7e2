// file: internals/features/finance/billing/dto/billing_dto.go
package dto

import "github.com/google/uuid"

type InvoiceCreateReq struct {
	SubscriptionInvoiceSchoolID    uuid.UUID `json:"subscription_invoice_school_id" validate:"required"`
	SubscriptionInvoiceAmount      int64     `json:"subscription_invoice_amount" validate:"required,gt=0"`
	SubscriptionInvoicePeriodMonth int       `json:"subscription_invoice_period_month" validate:"required,min=1,max=12"`
	SubscriptionInvoicePeriodYear  int       `json:"subscription_invoice_period_year" validate:"required,min=2000"`

	// Dikirim ke Midtrans sebagai customer detail
	BillingEmail string `json:"billing_email" validate:"required,email"`
}
