package models

import "time"

type PaymentVerificationLogStatus string

const (
	PaymentVerificationLogStatusReceived     PaymentVerificationLogStatus = "received"
	PaymentVerificationLogStatusHandled      PaymentVerificationLogStatus = "handled"
	PaymentVerificationLogStatusHandleFailed PaymentVerificationLogStatus = "handle_failed"
)

// PaymentVerificationLog is one row per checkout callback state. The
// callback signature is never stored.
type PaymentVerificationLog struct {
	ID                     string                       `gorm:"column:id;type:uuid;primary_key" json:"id"`
	AccountID              *string                      `gorm:"column:account_id;type:varchar(64);index" json:"account_id"`
	TraceID                string                       `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	RazorpayPaymentID      string                       `gorm:"column:razorpay_payment_id;type:varchar(128);index" json:"razorpay_payment_id"`
	RazorpaySubscriptionID string                       `gorm:"column:razorpay_subscription_id;type:varchar(128);index" json:"razorpay_subscription_id"`
	Status                 PaymentVerificationLogStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	// Authentic is nil until the verification outcome is known.
	Authentic   *bool     `gorm:"column:authentic" json:"authentic"`
	RedirectURL string    `gorm:"column:redirect_url;type:text" json:"redirect_url"`
	Error       string    `gorm:"column:error;type:text" json:"error"`
	ReceivedAt  time.Time `gorm:"column:received_at" json:"received_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PaymentVerificationLog) TableName() string { return "payment_verification_log" }
