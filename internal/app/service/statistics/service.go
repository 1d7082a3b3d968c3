package statistics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/changefeed"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/fatflowers/coursehub/pkg/metrics"
	"github.com/fatflowers/coursehub/pkg/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	TriggerTick   = "tick"
	TriggerChange = "change"
	TriggerManual = "manual"
)

// SnapshotRepository is the time-ordered snapshot store.
type SnapshotRepository interface {
	Append(ctx context.Context, snap *models.StatsSnapshot) error
	Latest(ctx context.Context) (*models.StatsSnapshot, error)
	LatestN(ctx context.Context, n int) ([]*models.StatsSnapshot, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, snap *models.StatsSnapshot) error
}

type AccountCounter interface {
	Count(ctx context.Context) (int64, error)
	CountBySubscriptionStatus(ctx context.Context, status types.SubscriptionStatus) (int64, error)
}

type ViewCounter interface {
	SumViews(ctx context.Context) (int64, error)
}

// Service maintains the statistics snapshots: a tick appends a zeroed
// snapshot, a change event rewrites the newest one from current counts.
type Service struct {
	snapshots SnapshotRepository
	accounts  AccountCounter
	views     ViewCounter
	window    int
	log       *zap.SugaredLogger
	now       func() time.Time

	// serializes appends and recomputes inside one process; across
	// processes the full recompute converges anyway
	mu sync.Mutex
}

func NewService(snapshots SnapshotRepository, accounts AccountCounter, views ViewCounter, cfg *config.Config, log *zap.SugaredLogger) *Service {
	window := cfg.Stats.Window
	if window < 2 {
		window = 12
	}
	return &Service{
		snapshots: snapshots,
		accounts:  accounts,
		views:     views,
		window:    window,
		log:       log,
		now:       time.Now,
	}
}

// AppendSnapshot starts a new period with a zero-valued snapshot.
func (s *Service) AppendSnapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendSnapshot(ctx)
}

func (s *Service) appendSnapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	snap := &models.StatsSnapshot{CreatedAt: s.now()}
	if err := s.snapshots.Append(ctx, snap); err != nil {
		return nil, fmt.Errorf("append snapshot: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("stats snapshot appended", "id", snap.ID)
	return snap, nil
}

// EnsureSnapshot appends a first snapshot when the store is empty so change
// events always have one to update.
func (s *Service) EnsureSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.snapshots.Count(ctx)
	if err != nil {
		return fmt.Errorf("count snapshots: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = s.appendSnapshot(ctx)
	return err
}

type counts struct {
	users, subscription, views int64
}

// Recompute writes the current counts into the newest snapshot and stamps
// it with the current time. It never appends.
func (s *Service) Recompute(ctx context.Context) (*models.StatsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recompute(ctx)
}

func (s *Service) recompute(ctx context.Context) (*models.StatsSnapshot, error) {
	c, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	// read after counting so a snapshot appended meanwhile by another
	// process is the one updated
	latest, err := s.snapshots.Latest(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("no stats snapshot to update")
		}
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	latest.Users = c.users
	latest.Subscription = c.subscription
	latest.Views = c.views
	// never moves backwards, so the row stays newest
	if now := s.now(); now.After(latest.CreatedAt) {
		latest.CreatedAt = now
	}
	if err := s.snapshots.Save(ctx, latest); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	metrics.StatsLatest.WithLabelValues("users").Set(float64(c.users))
	metrics.StatsLatest.WithLabelValues("subscription").Set(float64(c.subscription))
	metrics.StatsLatest.WithLabelValues("views").Set(float64(c.views))
	return latest, nil
}

// collect runs the three aggregate queries concurrently.
func (s *Service) collect(ctx context.Context) (*counts, error) {
	queries := map[string]func(context.Context) (int64, error){
		"users": s.accounts.Count,
		"subscription": func(ctx context.Context) (int64, error) {
			return s.accounts.CountBySubscriptionStatus(ctx, types.SubscriptionStatusActive)
		},
		"views": s.views.SumViews,
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(queries))
	resChan := make(chan lo.Entry[string, int64], len(queries))
	for name, q := range queries {
		wg.Add(1)
		go func(name string, q func(context.Context) (int64, error)) {
			defer wg.Done()
			v, err := q(ctx)
			if err != nil {
				errChan <- fmt.Errorf("count %s: %w", name, err)
				return
			}
			resChan <- lo.Entry[string, int64]{Key: name, Value: v}
		}(name, q)
	}
	wg.Wait()
	close(errChan)
	close(resChan)

	if err := <-errChan; err != nil {
		return nil, err
	}
	res := lo.FromEntries(lo.ChannelToSlice(resChan))
	return &counts{users: res["users"], subscription: res["subscription"], views: res["views"]}, nil
}

// HandleChange is the change feed subscriber.
func (s *Service) HandleChange(ctx context.Context, ev changefeed.Event) {
	if ev.Collection != changefeed.CollectionAccount && ev.Collection != changefeed.CollectionCourse {
		return
	}
	_, err := s.Recompute(ctx)
	metrics.StatsRecomputes.WithLabelValues(TriggerChange, metrics.Outcome(err)).Inc()
	if err != nil {
		logctx.FromCtx(ctx, s.log).Warnw("stats recompute failed",
			"collection", ev.Collection, "operation", ev.Operation, "error", err)
	}
}

// Tick is the monthly calendar job.
func (s *Service) Tick(ctx context.Context) error {
	_, err := s.AppendSnapshot(ctx)
	metrics.StatsRecomputes.WithLabelValues(TriggerTick, metrics.Outcome(err)).Inc()
	return err
}

// Snapshot appends a snapshot and fills it with the current counts.
func (s *Service) Snapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	s.mu.Lock()
	snap, err := s.appendSnapshot(ctx)
	if err == nil {
		snap, err = s.recompute(ctx)
	}
	s.mu.Unlock()
	metrics.StatsRecomputes.WithLabelValues(TriggerManual, metrics.Outcome(err)).Inc()
	return snap, err
}
