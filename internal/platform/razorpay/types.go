package razorpay

import "fmt"

type CreateSubscriptionRequest struct {
	PlanID         string `json:"plan_id"`
	TotalCount     int    `json:"total_count"`
	CustomerNotify int    `json:"customer_notify"`
}

// Subscription is the subset of the gateway subscription entity we use.
type Subscription struct {
	ID     string `json:"id"`
	PlanID string `json:"plan_id"`
	Status string `json:"status"`
}

type cancelSubscriptionRequest struct {
	CancelAtCycleEnd int `json:"cancel_at_cycle_end"`
}

type Refund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// APIError is the error body the gateway returns with non-2xx responses.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("razorpay: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}
