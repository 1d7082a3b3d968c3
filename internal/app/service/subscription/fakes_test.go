package subscription

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/razorpay"
	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/fatflowers/coursehub/pkg/types"
	"go.uber.org/zap"
)

const testSecret = "gateway-secret"

type fakeAccounts struct {
	mu      sync.Mutex
	rows    map[string]models.Account
	saveErr error
	saves   int
}

func (f *fakeAccounts) FindByID(_ context.Context, id string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("find account: %w", store.ErrNotFound)
	}
	return &a, nil
}

func (f *fakeAccounts) Save(_ context.Context, a *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAccounts) get(id string) *models.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := f.rows[id]
	return &a
}

type fakeLedger struct {
	mu   sync.Mutex
	rows map[string]*models.Payment
	now  func() time.Time
}

func (f *fakeLedger) Create(_ context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.RazorpaySubscriptionID == p.RazorpaySubscriptionID {
			return fmt.Errorf("create payment: %w", store.ErrDuplicate)
		}
	}
	if p.ID == "" {
		p.ID = "pay_row_" + p.RazorpayPaymentID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = f.now()
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeLedger) FindBySubscriptionID(_ context.Context, subID string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.RazorpaySubscriptionID == subID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("find payment: %w", store.ErrNotFound)
}

func (f *fakeLedger) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("delete payment: %w", store.ErrNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeLedger) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeGateway struct {
	created   []razorpay.CreateSubscriptionRequest
	cancelled []string
	refunded  []string

	createErr error
	cancelErr error
	refundErr error
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

func (g *fakeGateway) CreateSubscription(_ context.Context, req razorpay.CreateSubscriptionRequest) (*razorpay.Subscription, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, req)
	return &razorpay.Subscription{ID: fmt.Sprintf("sub_%d", len(g.created)), PlanID: req.PlanID, Status: "created"}, nil
}

func (g *fakeGateway) CancelSubscription(_ context.Context, id string) (*razorpay.Subscription, error) {
	if g.cancelErr != nil {
		return nil, g.cancelErr
	}
	g.cancelled = append(g.cancelled, id)
	return &razorpay.Subscription{ID: id, Status: "cancelled"}, nil
}

func (g *fakeGateway) RefundPayment(_ context.Context, paymentID string) (*razorpay.Refund, error) {
	if g.refundErr != nil {
		return nil, g.refundErr
	}
	g.refunded = append(g.refunded, paymentID)
	return &razorpay.Refund{ID: "rfnd_1", PaymentID: paymentID, Status: "processed"}, nil
}

func (g *fakeGateway) VerifyPaymentSignature(paymentID, subscriptionID, signature string) bool {
	return razorpay.Sign(testSecret, paymentID, subscriptionID) == signature
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []*models.SubscriptionLog
}

func (f *fakeAudit) RecordSubscriptionChange(_ context.Context, e *models.SubscriptionLog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
}

type fixture struct {
	svc      *Service
	accounts *fakeAccounts
	ledger   *fakeLedger
	gateway  *fakeGateway
	audit    *fakeAudit
	now      time.Time
}

func newFixture() *fixture {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := &fixture{
		accounts: &fakeAccounts{rows: map[string]models.Account{}},
		gateway:  &fakeGateway{},
		audit:    &fakeAudit{},
		now:      now,
	}
	f.ledger = &fakeLedger{rows: map[string]*models.Payment{}, now: func() time.Time { return f.now }}
	cfg := &config.Config{
		Gateway: config.GatewayConfig{Plan: types.Plan{ID: "plan_MBjIyWPRp9MuhE", TotalCount: 12, CustomerNotify: true}},
		Payment: config.PaymentConfig{RefundDays: 7, FrontendURL: "https://app.example/"},
	}
	f.svc = NewService(f.accounts, f.ledger, f.gateway, f.audit, cfg, zap.NewNop().Sugar())
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) addAccount(id string, role types.Role) {
	f.accounts.rows[id] = models.Account{ID: id, Name: id, Email: id + "@example.com", Password: "hash", Role: role}
}

var errBoom = errors.New("boom")
