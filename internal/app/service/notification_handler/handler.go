package notification_handler

import (
	"context"
	"time"

	notificationlog "github.com/fatflowers/coursehub/internal/app/service/notification_log"
	"github.com/fatflowers/coursehub/internal/app/service/subscription"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, accountID string, req subscription.VerifyPaymentRequest) (*subscription.VerifyPaymentResult, error)
}

type LogSaver interface {
	Save(ctx context.Context, log *models.PaymentVerificationLog)
}

// NotificationHandler records every checkout callback around the
// verification: a received row first, then handled or handle_failed.
type NotificationHandler struct {
	verifier PaymentVerifier
	logs     LogSaver
	Logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewNotificationHandler(verifier PaymentVerifier, logs LogSaver, log *zap.SugaredLogger) *NotificationHandler {
	return &NotificationHandler{verifier: verifier, logs: logs, Logger: log, now: time.Now}
}

func (h *NotificationHandler) HandleVerification(ctx context.Context, accountID string, req subscription.VerifyPaymentRequest) (res *subscription.VerifyPaymentResult, resErr error) {
	traceID, _ := ctx.Value(logctx.ContextKey(logctx.TraceIDKey)).(string)
	receivedAt := h.now()
	entry := func(status models.PaymentVerificationLogStatus) *models.PaymentVerificationLog {
		return &models.PaymentVerificationLog{
			AccountID:              lo.EmptyableToPtr(accountID),
			TraceID:                traceID,
			RazorpayPaymentID:      req.RazorpayPaymentID,
			RazorpaySubscriptionID: req.RazorpaySubscriptionID,
			Status:                 status,
			ReceivedAt:             receivedAt,
		}
	}

	h.logs.Save(ctx, entry(models.PaymentVerificationLogStatusReceived))

	defer func() {
		row := entry(models.PaymentVerificationLogStatusHandled)
		if resErr != nil {
			row.Status = models.PaymentVerificationLogStatusHandleFailed
			row.Error = resErr.Error()
		} else {
			row.Authentic = lo.ToPtr(res.Authentic)
			row.RedirectURL = res.RedirectURL
		}
		h.logs.Save(ctx, row)
	}()

	res, resErr = h.verifier.VerifyPayment(ctx, accountID, req)
	if resErr != nil {
		logctx.FromCtx(ctx, h.Logger).Errorw("payment verification failed", "payment_id", req.RazorpayPaymentID, "error", resErr)
		return nil, resErr
	}
	logctx.FromCtx(ctx, h.Logger).Infow("payment verification handled", "payment_id", req.RazorpayPaymentID, "authentic", res.Authentic)
	return res, nil
}

var Module = fx.Options(
	fx.Provide(
		func(s *subscription.Service) PaymentVerifier { return s },
		func(s *notificationlog.Service) LogSaver { return s },
		NewNotificationHandler,
	),
)
