package models

import (
	"time"

	"github.com/fatflowers/coursehub/pkg/types"
	"gorm.io/datatypes"
)

// SubscriptionLog records changes to account subscriptions.
// Use case: troubleshooting.
type SubscriptionLog struct {
	ID        string                         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	AccountID string                         `gorm:"column:account_id;type:varchar(64);index:idx_subscription_log_account_id;not null" json:"account_id"`
	Reason    types.SubscriptionChangeReason `gorm:"column:reason;type:varchar(64);not null" json:"reason"`
	// Before stores the subscription sub-state before the change.
	Before datatypes.JSONType[*AccountSubscription] `gorm:"column:before;type:jsonb;default:'null'" json:"before"`
	// After stores the subscription sub-state after the change.
	After datatypes.JSONType[*AccountSubscription] `gorm:"column:after;type:jsonb;default:'null'" json:"after"`
	// Extra stores context such as the payment id and refund outcome.
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time         `json:"created_at"`
}

func (SubscriptionLog) TableName() string {
	return "subscription_log"
}
