package models

import (
	"testing"

	"github.com/fatflowers/coursehub/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_PrepareForPersistence_HashesStagedPassword(t *testing.T) {
	a := &Account{Name: " Ada ", Email: "Ada@Example.com"}
	a.SetPassword("secret123")

	require.NoError(t, a.PrepareForPersistence())
	assert.Equal(t, "Ada", a.Name)
	assert.Equal(t, "ada@example.com", a.Email)
	assert.Equal(t, types.RoleUser, a.Role)
	assert.NotEqual(t, "secret123", a.Password)
	assert.True(t, a.CheckPassword("secret123"))
	assert.False(t, a.CheckPassword("wrong"))

	// a second prepare without a staged password keeps the hash
	hash := a.Password
	require.NoError(t, a.PrepareForPersistence())
	assert.Equal(t, hash, a.Password)
}

func TestAccount_PrepareForPersistence_Rejects(t *testing.T) {
	cases := map[string]func(a *Account){
		"short password": func(a *Account) { a.SetPassword("123") },
		"bad email":      func(a *Account) { a.Email = "nope"; a.SetPassword("secret123") },
		"no password":    func(a *Account) {},
		"bad role":       func(a *Account) { a.Role = "root"; a.SetPassword("secret123") },
		"half subscription": func(a *Account) {
			id := "sub_1"
			a.SubscriptionID = &id
			a.SetPassword("secret123")
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := &Account{Name: "Ada", Email: "ada@example.com"}
			mutate(a)
			require.ErrorIs(t, a.PrepareForPersistence(), ErrInvalidAccount)
		})
	}
}

func TestAccount_SubscriptionState(t *testing.T) {
	a := &Account{}
	assert.False(t, a.HasSubscription())
	assert.False(t, a.IsSubscriber())

	a.SetSubscription("sub_1", types.SubscriptionStatusCreated)
	assert.True(t, a.HasSubscription())
	assert.False(t, a.IsSubscriber())

	snap := a.Subscription()
	a.SetSubscription("sub_1", types.SubscriptionStatusActive)
	assert.True(t, a.IsSubscriber())
	assert.Equal(t, types.SubscriptionStatusCreated, *snap.Status)

	a.ClearSubscription()
	assert.Nil(t, a.SubscriptionID)
	assert.Nil(t, a.SubscriptionStatus)
	assert.Nil(t, a.Subscription().ID)
}
