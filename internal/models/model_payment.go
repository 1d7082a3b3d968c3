package models

import "time"

// Payment is a ledger entry for a verified gateway payment. At most one
// exists per gateway subscription id.
type Payment struct {
	ID                     string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	AccountID              string    `gorm:"column:account_id;type:varchar(64);not null;index:idx_payment_account_id" json:"account_id"`
	RazorpayPaymentID      string    `gorm:"column:razorpay_payment_id;type:varchar(128);not null;uniqueIndex:unique_payment_razorpay_payment_id" json:"razorpay_payment_id"`
	RazorpaySubscriptionID string    `gorm:"column:razorpay_subscription_id;type:varchar(128);not null;uniqueIndex:unique_payment_razorpay_subscription_id" json:"razorpay_subscription_id"`
	RazorpaySignature      string    `gorm:"column:razorpay_signature;type:varchar(256);not null" json:"razorpay_signature"`
	CreatedAt              time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "payment"
}
