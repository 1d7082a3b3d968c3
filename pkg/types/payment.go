package types

// Plan describes the recurring plan a subscription is created against.
type Plan struct {
	ID             string `json:"id" mapstructure:"id"`
	TotalCount     int    `json:"total_count" mapstructure:"total_count"`
	CustomerNotify bool   `json:"customer_notify" mapstructure:"customer_notify"`
}
