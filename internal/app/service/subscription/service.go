package subscription

import (
	"context"
	"time"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/razorpay"
	"github.com/fatflowers/coursehub/pkg/config"
	"go.uber.org/zap"
)

// AccountRepository is the part of the account store the lifecycle needs.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	Save(ctx context.Context, a *models.Account) error
}

// LedgerRepository persists verified payments.
type LedgerRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	FindBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
}

// Gateway is the billing gateway client.
type Gateway interface {
	KeyID() string
	CreateSubscription(ctx context.Context, req razorpay.CreateSubscriptionRequest) (*razorpay.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*razorpay.Subscription, error)
	RefundPayment(ctx context.Context, paymentID string) (*razorpay.Refund, error)
	VerifyPaymentSignature(paymentID, subscriptionID, signature string) bool
}

// AuditRecorder stores subscription change rows.
type AuditRecorder interface {
	RecordSubscriptionChange(ctx context.Context, entry *models.SubscriptionLog)
}

// Service drives an account through none -> created -> active -> none.
// Operations on the same account are not serialized; the last write wins.
type Service struct {
	accounts AccountRepository
	ledger   LedgerRepository
	gateway  Gateway
	audit    AuditRecorder
	cfg      *config.Config
	log      *zap.SugaredLogger
	now      func() time.Time
}

func NewService(accounts AccountRepository, ledger LedgerRepository, gateway Gateway, audit AuditRecorder, cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{
		accounts: accounts,
		ledger:   ledger,
		gateway:  gateway,
		audit:    audit,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// GatewayKey returns the publishable key for the checkout widget.
func (s *Service) GatewayKey() string {
	return s.gateway.KeyID()
}
