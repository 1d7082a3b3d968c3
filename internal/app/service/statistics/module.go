package statistics

import (
	"context"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/platform/changefeed"
	"go.uber.org/fx"
)

// ServiceModule provides the aggregator without subscribing it to anything.
var ServiceModule = fx.Options(
	fx.Provide(
		func(s *store.StatsStore) SnapshotRepository { return s },
		func(s *store.AccountStore) AccountCounter { return s },
		func(s *store.CourseStore) ViewCounter { return s },
		NewService,
	),
)

// Module provides the aggregator and subscribes it to the change feed.
var Module = fx.Options(
	ServiceModule,
	fx.Invoke(registerAggregator),
)

// SchedulerModule adds the monthly tick; only the serving process needs it.
var SchedulerModule = fx.Options(
	fx.Provide(NewScheduler),
	fx.Invoke(registerScheduler),
)

func registerAggregator(lc fx.Lifecycle, svc *Service, bus changefeed.Bus) {
	bus.Subscribe(svc.HandleChange)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := svc.EnsureSnapshot(ctx); err != nil {
				return err
			}
			_, err := svc.Recompute(ctx)
			return err
		},
	})
}

func registerScheduler(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			return s.Stop()
		},
	})
}
