package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/fatflowers/coursehub/pkg/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// ErrInvalidAccount wraps every PrepareForPersistence validation failure.
var ErrInvalidAccount = errors.New("invalid account")

const (
	PasswordMinLength = 6
	passwordCost      = 10
)

// Media references an asset kept in object storage.
type Media struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// PlaylistItem is a course bookmarked by an account.
type PlaylistItem struct {
	CourseID string `json:"course"`
	Poster   string `json:"poster"`
}

// AccountSubscription is the current subscription sub-state of an account.
// ID and Status are either both set or both nil.
type AccountSubscription struct {
	ID     *string                   `json:"id,omitempty"`
	Status *types.SubscriptionStatus `json:"status,omitempty"`
}

// Account is a platform user.
type Account struct {
	ID       string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name     string     `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Email    string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:unique_account_email" json:"email"`
	Password string     `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Role     types.Role `gorm:"column:role;type:varchar(16);not null;default:'user'" json:"role"`
	// SubscriptionID is the gateway subscription id of the current cycle.
	SubscriptionID     *string                   `gorm:"column:subscription_id;type:varchar(128);index:idx_account_subscription_id" json:"subscription_id"`
	SubscriptionStatus *types.SubscriptionStatus `gorm:"column:subscription_status;type:varchar(32);index:idx_account_subscription_status" json:"subscription_status"`

	Avatar    datatypes.JSONType[Media]         `gorm:"column:avatar;type:jsonb;default:'{}'" json:"avatar"`
	Playlist  datatypes.JSONSlice[PlaylistItem] `gorm:"column:playlist;type:jsonb;default:'[]'" json:"playlist"`
	CreatedAt time.Time                         `json:"created_at"`
	UpdatedAt time.Time                         `json:"updated_at"`

	plainPassword string `gorm:"-"`
}

func (Account) TableName() string {
	return "account"
}

// SetPassword stages a new password; it is hashed by PrepareForPersistence.
func (a *Account) SetPassword(plain string) {
	a.plainPassword = plain
}

// CheckPassword reports whether plain matches the stored hash.
func (a *Account) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}

// PrepareForPersistence normalizes and validates the account and hashes a
// staged password. Stores call it before every insert or update.
func (a *Account) PrepareForPersistence() error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.Role == "" {
		a.Role = types.RoleUser
	}
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidAccount)
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidAccount, a.Email)
	}
	if !a.Role.Valid() {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidAccount, a.Role)
	}
	if (a.SubscriptionID == nil) != (a.SubscriptionStatus == nil) {
		return fmt.Errorf("%w: subscription id and status must be set together", ErrInvalidAccount)
	}
	if a.plainPassword != "" {
		if len(a.plainPassword) < PasswordMinLength {
			return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidAccount, PasswordMinLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(a.plainPassword), passwordCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		a.Password = string(hash)
		a.plainPassword = ""
	}
	if a.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidAccount)
	}
	return nil
}

func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == types.RoleAdmin
}

// IsSubscriber reports whether the account holds an active subscription.
func (a *Account) IsSubscriber() bool {
	return a != nil && a.SubscriptionStatus != nil && *a.SubscriptionStatus == types.SubscriptionStatusActive
}

func (a *Account) HasSubscription() bool {
	return a != nil && a.SubscriptionID != nil && *a.SubscriptionID != ""
}

func (a *Account) SetSubscription(id string, status types.SubscriptionStatus) {
	a.SubscriptionID = &id
	a.SubscriptionStatus = &status
}

func (a *Account) ClearSubscription() {
	a.SubscriptionID = nil
	a.SubscriptionStatus = nil
}

// Subscription returns a copy of the subscription sub-state.
func (a *Account) Subscription() *AccountSubscription {
	sub := &AccountSubscription{}
	if a.SubscriptionID != nil {
		id := *a.SubscriptionID
		sub.ID = &id
	}
	if a.SubscriptionStatus != nil {
		st := *a.SubscriptionStatus
		sub.Status = &st
	}
	return sub
}
