package types

type SubscriptionStatus string

const (
	SubscriptionStatusNone      SubscriptionStatus = "none"
	SubscriptionStatusCreated   SubscriptionStatus = "created"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

type SubscriptionChangeReason string

const (
	SubscriptionChangeReasonCreate   SubscriptionChangeReason = "create"
	SubscriptionChangeReasonActivate SubscriptionChangeReason = "activate"
	SubscriptionChangeReasonCancel   SubscriptionChangeReason = "cancel"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Toggle flips user <-> admin.
func (r Role) Toggle() Role {
	if r == RoleUser {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
