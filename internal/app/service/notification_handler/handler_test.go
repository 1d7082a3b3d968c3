package notification_handler

import (
	"context"
	"sync"
	"testing"

	"github.com/fatflowers/coursehub/internal/app/service/subscription"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVerifier struct {
	res *subscription.VerifyPaymentResult
	err error
}

func (s *stubVerifier) VerifyPayment(context.Context, string, subscription.VerifyPaymentRequest) (*subscription.VerifyPaymentResult, error) {
	return s.res, s.err
}

type memLogs struct {
	mu   sync.Mutex
	rows []*models.PaymentVerificationLog
}

func (m *memLogs) Save(_ context.Context, l *models.PaymentVerificationLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, l)
}

var req = subscription.VerifyPaymentRequest{
	RazorpaySignature:      "sig",
	RazorpayPaymentID:      "pay_1",
	RazorpaySubscriptionID: "sub_1",
}

func TestHandleVerification_LogsReceivedThenHandled(t *testing.T) {
	logs := &memLogs{}
	want := &subscription.VerifyPaymentResult{Authentic: true, RedirectURL: "https://app/paymentsuccess?reference=pay_1"}
	h := NewNotificationHandler(&stubVerifier{res: want}, logs, zap.NewNop().Sugar())

	ctx := context.WithValue(context.Background(), logctx.ContextKey(logctx.TraceIDKey), "trace-1")
	res, err := h.HandleVerification(ctx, "acc-1", req)
	require.NoError(t, err)
	assert.Equal(t, want, res)

	require.Len(t, logs.rows, 2)
	assert.Equal(t, models.PaymentVerificationLogStatusReceived, logs.rows[0].Status)
	assert.Nil(t, logs.rows[0].Authentic)
	assert.Equal(t, models.PaymentVerificationLogStatusHandled, logs.rows[1].Status)
	require.NotNil(t, logs.rows[1].Authentic)
	assert.True(t, *logs.rows[1].Authentic)
	assert.Equal(t, want.RedirectURL, logs.rows[1].RedirectURL)
	for _, row := range logs.rows {
		assert.Equal(t, "trace-1", row.TraceID)
		assert.Equal(t, "pay_1", row.RazorpayPaymentID)
		assert.Equal(t, "sub_1", row.RazorpaySubscriptionID)
		assert.Equal(t, "acc-1", *row.AccountID)
		assert.Equal(t, logs.rows[0].ReceivedAt, row.ReceivedAt)
	}
}

func TestHandleVerification_LogsRejectedCallback(t *testing.T) {
	logs := &memLogs{}
	want := &subscription.VerifyPaymentResult{Authentic: false, RedirectURL: "https://app/paymentfail"}
	h := NewNotificationHandler(&stubVerifier{res: want}, logs, zap.NewNop().Sugar())

	res, err := h.HandleVerification(context.Background(), "acc-1", subscription.VerifyPaymentRequest{RazorpayPaymentID: "pay_1"})
	require.NoError(t, err)
	assert.Equal(t, want, res)

	require.Len(t, logs.rows, 2)
	last := logs.rows[1]
	assert.Equal(t, models.PaymentVerificationLogStatusHandled, last.Status)
	require.NotNil(t, last.Authentic)
	assert.False(t, *last.Authentic)
	assert.Empty(t, last.RazorpaySubscriptionID)
	assert.Empty(t, last.Error)
}

func TestHandleVerification_LogsFailure(t *testing.T) {
	logs := &memLogs{}
	h := NewNotificationHandler(&stubVerifier{err: apperr.NotFound("account not found")}, logs, zap.NewNop().Sugar())

	_, err := h.HandleVerification(context.Background(), "", req)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	require.Len(t, logs.rows, 2)
	assert.Nil(t, logs.rows[0].AccountID)
	assert.Equal(t, models.PaymentVerificationLogStatusHandleFailed, logs.rows[1].Status)
	assert.Nil(t, logs.rows[1].Authentic)
	assert.Contains(t, logs.rows[1].Error, "account not found")
}
