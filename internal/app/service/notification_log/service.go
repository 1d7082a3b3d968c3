package notification_log

import (
	"context"
	"sync"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/fatflowers/coursehub/pkg/tool"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service writes payment callback logs and subscription audit rows off the
// request path.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	wg  sync.WaitGroup
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// Save asynchronously persists a payment verification log. Nil input is ignored.
func (s *Service) Save(ctx context.Context, log *models.PaymentVerificationLog) {
	if log == nil {
		return
	}
	if log.ID == "" {
		log.ID = tool.GenerateUUIDV7()
	}
	s.async(ctx, "verification log", log)
}

// RecordSubscriptionChange asynchronously persists a subscription audit row.
func (s *Service) RecordSubscriptionChange(ctx context.Context, entry *models.SubscriptionLog) {
	if entry == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = tool.GenerateUUIDV7()
	}
	s.async(ctx, "subscription log", entry)
}

func (s *Service) async(ctx context.Context, what string, row any) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.db.Save(row).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save %s: %v", what, err)
		}
	}()
}

// Wait blocks until every pending write finished or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func registerDrain(lc fx.Lifecycle, s *Service) {
	lc.Append(fx.Hook{OnStop: s.Wait})
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(registerDrain),
)
