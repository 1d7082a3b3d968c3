package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the hex HMAC-SHA256 of paymentID|subscriptionID under secret,
// matching what the checkout widget hands back after a subscription payment.
func Sign(secret, paymentID, subscriptionID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(paymentID + "|" + subscriptionID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature compares in constant time.
func (c *Client) VerifyPaymentSignature(paymentID, subscriptionID, signature string) bool {
	expected := Sign(c.keySecret, paymentID, subscriptionID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
