// file: internals/features/finance/billing/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"sekolahku_backend/internals/features/finance/billing/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap untuk satu tagihan langganan.
func GenerateSnapToken(inv model.SubscriptionInvoiceModel, schoolName string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.SubscriptionInvoiceOrderID,
			GrossAmt: inv.SubscriptionInvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: schoolName,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
