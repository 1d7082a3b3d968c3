package subscription

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/razorpay"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/fatflowers/coursehub/pkg/metrics"
	"github.com/fatflowers/coursehub/pkg/types"
	"gorm.io/datatypes"
)

type VerifyPaymentRequest struct {
	RazorpaySignature      string `json:"razorpay_signature" form:"razorpay_signature"`
	RazorpayPaymentID      string `json:"razorpay_payment_id" form:"razorpay_payment_id"`
	RazorpaySubscriptionID string `json:"razorpay_subscription_id" form:"razorpay_subscription_id"`
}

type VerifyPaymentResult struct {
	Authentic   bool   `json:"authentic"`
	RedirectURL string `json:"redirect_url"`
}

type CancelResult struct {
	Refunded bool   `json:"refunded"`
	Message  string `json:"message"`
}

// CreateSubscription opens a gateway subscription for the account and
// returns its id for client-side checkout.
func (s *Service) CreateSubscription(ctx context.Context, accountID string) (subID string, err error) {
	defer func() { s.observe("create", err) }()

	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	if account.IsAdmin() {
		return "", apperr.Forbidden("admin can't buy subscription")
	}

	plan := s.cfg.Gateway.Plan
	remote, err := s.gateway.CreateSubscription(ctx, razorpay.CreateSubscriptionRequest{
		PlanID:         plan.ID,
		TotalCount:     plan.TotalCount,
		CustomerNotify: boolToInt(plan.CustomerNotify),
	})
	if err != nil {
		return "", apperr.Upstream("failed to create subscription", err)
	}

	before := account.Subscription()
	status := types.SubscriptionStatus(remote.Status)
	if status == "" {
		status = types.SubscriptionStatusCreated
	}
	account.SetSubscription(remote.ID, status)
	if err := s.accounts.Save(ctx, account); err != nil {
		// the gateway subscription is left behind
		logctx.FromCtx(ctx, s.log).Errorw("account write failed after gateway create, remote subscription orphaned",
			"account_id", accountID, "subscription_id", remote.ID, "error", err)
		return "", fmt.Errorf("save account subscription: %w", err)
	}

	s.record(ctx, account.ID, types.SubscriptionChangeReasonCreate, before, account.Subscription(), nil)
	logctx.FromCtx(ctx, s.log).Infow("subscription created", "account_id", accountID, "subscription_id", remote.ID)
	return remote.ID, nil
}

// VerifyPayment checks the checkout callback signature against the
// account's pending subscription. A callback that cannot be authenticated
// (missing fields, no pending subscription, signature mismatch) is not an
// error: it yields a redirect to the failure page and leaves every store
// untouched.
func (s *Service) VerifyPayment(ctx context.Context, accountID string, req VerifyPaymentRequest) (res *VerifyPaymentResult, err error) {
	defer func() { s.observe("activate", err) }()

	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	reject := func(reason string) *VerifyPaymentResult {
		logctx.FromCtx(ctx, s.log).Warnw("payment callback rejected",
			"reason", reason, "account_id", accountID,
			"payment_id", req.RazorpayPaymentID, "subscription_id", req.RazorpaySubscriptionID)
		return &VerifyPaymentResult{Authentic: false, RedirectURL: s.frontendURL("/paymentfail", nil)}
	}

	if req.RazorpayPaymentID == "" || req.RazorpaySignature == "" || req.RazorpaySubscriptionID == "" {
		return reject("missing callback fields"), nil
	}
	if !account.HasSubscription() {
		return reject("no pending subscription"), nil
	}
	subID := *account.SubscriptionID

	if !s.gateway.VerifyPaymentSignature(req.RazorpayPaymentID, subID, req.RazorpaySignature) {
		return reject("signature mismatch"), nil
	}

	err = s.ledger.Create(ctx, &models.Payment{
		AccountID:              account.ID,
		RazorpayPaymentID:      req.RazorpayPaymentID,
		RazorpaySubscriptionID: subID,
		RazorpaySignature:      req.RazorpaySignature,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("payment already verified")
		}
		return nil, fmt.Errorf("create ledger entry: %w", err)
	}

	before := account.Subscription()
	account.SetSubscription(subID, types.SubscriptionStatusActive)
	if err := s.accounts.Save(ctx, account); err != nil {
		// the ledger row already exists, so retries will hit Conflict
		logctx.FromCtx(ctx, s.log).Errorw("payment recorded but account not activated",
			"account_id", account.ID, "payment_id", req.RazorpayPaymentID,
			"subscription_id", subID, "error", err)
		return nil, fmt.Errorf("activate account subscription: %w", err)
	}

	s.record(ctx, account.ID, types.SubscriptionChangeReasonActivate, before, account.Subscription(),
		map[string]any{"payment_id": req.RazorpayPaymentID})
	return &VerifyPaymentResult{
		Authentic:   true,
		RedirectURL: s.frontendURL("/paymentsuccess", url.Values{"reference": {req.RazorpayPaymentID}}),
	}, nil
}

// CancelSubscription cancels at the gateway, refunds when the payment is
// younger than the refund window, then forgets the subscription locally.
// A gateway failure aborts before any local change.
func (s *Service) CancelSubscription(ctx context.Context, accountID string) (res *CancelResult, err error) {
	defer func() { s.observe("cancel", err) }()

	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.HasSubscription() {
		return nil, apperr.NotFound("no subscription to cancel")
	}
	subID := *account.SubscriptionID

	if _, err := s.gateway.CancelSubscription(ctx, subID); err != nil {
		return nil, apperr.Upstream("failed to cancel subscription", err)
	}

	payment, err := s.ledger.FindBySubscriptionID(ctx, subID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("payment not found for subscription")
		}
		return nil, fmt.Errorf("find ledger entry: %w", err)
	}

	window := s.cfg.Payment.RefundWindow()
	refund := s.now().Sub(payment.CreatedAt) < window
	if refund {
		if _, err := s.gateway.RefundPayment(ctx, payment.RazorpayPaymentID); err != nil {
			return nil, apperr.Upstream("failed to refund payment", err)
		}
	}

	if err := s.ledger.Delete(ctx, payment.ID); err != nil {
		return nil, fmt.Errorf("delete ledger entry: %w", err)
	}
	before := account.Subscription()
	account.ClearSubscription()
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("clear account subscription: %w", err)
	}

	s.record(ctx, account.ID, types.SubscriptionChangeReasonCancel, before, account.Subscription(),
		map[string]any{"payment_id": payment.RazorpayPaymentID, "refunded": refund})
	logctx.FromCtx(ctx, s.log).Infow("subscription cancelled", "account_id", accountID, "subscription_id", subID, "refunded", refund)

	days := s.cfg.Payment.RefundDays
	if refund {
		return &CancelResult{Refunded: true, Message: fmt.Sprintf("Subscription cancelled, You will receive full refund within %d days.", days)}, nil
	}
	return &CancelResult{Refunded: false, Message: fmt.Sprintf("Subscription cancelled, No refund initiated as subscription was cancelled after %d days.", days)}, nil
}

func (s *Service) loadAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	return account, nil
}

func (s *Service) record(ctx context.Context, accountID string, reason types.SubscriptionChangeReason, before, after *models.AccountSubscription, extra map[string]any) {
	if s.audit == nil {
		return
	}
	if extra == nil {
		extra = map[string]any{}
	}
	s.audit.RecordSubscriptionChange(ctx, &models.SubscriptionLog{
		AccountID: accountID,
		Reason:    reason,
		Before:    datatypes.NewJSONType(before),
		After:     datatypes.NewJSONType(after),
		Extra:     datatypes.JSONMap(extra),
	})
}

func (s *Service) observe(transition string, err error) {
	metrics.SubscriptionTransitions.WithLabelValues(transition, metrics.Outcome(err)).Inc()
}

func (s *Service) frontendURL(path string, q url.Values) string {
	u := strings.TrimRight(s.cfg.Payment.FrontendURL, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
