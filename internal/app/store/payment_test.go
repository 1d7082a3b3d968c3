package store

import (
	"context"
	"testing"

	"github.com/fatflowers/coursehub/internal/app/store/storetest"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStore_OnePerSubscription(t *testing.T) {
	s := NewPaymentStore(storetest.NewDB(t))
	ctx := context.Background()

	p := &models.Payment{AccountID: "acc", RazorpayPaymentID: "pay_1", RazorpaySubscriptionID: "sub_1", RazorpaySignature: "sig"}
	require.NoError(t, s.Create(ctx, p))

	dup := &models.Payment{AccountID: "acc", RazorpayPaymentID: "pay_2", RazorpaySubscriptionID: "sub_1", RazorpaySignature: "sig"}
	require.ErrorIs(t, s.Create(ctx, dup), ErrDuplicate)

	got, err := s.FindBySubscriptionID(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, "pay_1", got.RazorpayPaymentID)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, s.Delete(ctx, got.ID))
	_, err = s.FindBySubscriptionID(ctx, "sub_1")
	require.ErrorIs(t, err, ErrNotFound)
}
