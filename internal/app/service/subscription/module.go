package subscription

import (
	notificationlog "github.com/fatflowers/coursehub/internal/app/service/notification_log"
	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/platform/razorpay"
	"go.uber.org/fx"
)

// Module exposes the subscription service via Fx.
var Module = fx.Options(
	fx.Provide(
		func(s *store.AccountStore) AccountRepository { return s },
		func(s *store.PaymentStore) LedgerRepository { return s },
		func(c *razorpay.Client) Gateway { return c },
		func(s *notificationlog.Service) AuditRecorder { return s },
		NewService,
	),
)
