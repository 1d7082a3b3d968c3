package statistics

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/app/store/storetest"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/changefeed"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/fatflowers/coursehub/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type env struct {
	db       *gorm.DB
	svc      *Service
	stats    *store.StatsStore
	accounts *store.AccountStore
	courses  *store.CourseStore
	now      time.Time
}

func newEnv(t *testing.T) *env {
	db := storetest.NewDB(t)
	e := &env{
		db:       db,
		stats:    store.NewStatsStore(db),
		accounts: store.NewAccountStore(db),
		courses:  store.NewCourseStore(db),
		now:      time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC),
	}
	cfg := &config.Config{Stats: config.StatsConfig{Window: 12}}
	e.svc = NewService(e.stats, e.accounts, e.courses, cfg, zap.NewNop().Sugar())
	e.svc.now = func() time.Time { return e.now }
	return e
}

func (e *env) seedSnapshots(t *testing.T, n int) {
	base := e.now.AddDate(0, -n, 0)
	for i := 0; i < n; i++ {
		require.NoError(t, e.stats.Append(context.Background(), &models.StatsSnapshot{
			Users: int64(i + 1), CreatedAt: base.AddDate(0, i, 0),
		}))
	}
}

func TestAppendAndEnsureSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.svc.EnsureSnapshot(ctx))
	require.NoError(t, e.svc.EnsureSnapshot(ctx))
	n, err := e.stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	e.now = e.now.AddDate(0, 1, 0)
	snap, err := e.svc.AppendSnapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, snap.Users)
	assert.Zero(t, snap.Subscription)
	assert.Zero(t, snap.Views)
	n, err = e.stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRecompute_WithoutSnapshotIsNotFound(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.Recompute(context.Background())
	require.ErrorIs(t, err, apperr.ErrNotFound)

	n, err := e.stats.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecompute_ScenarioUpdatesLatestOnly(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedSnapshots(t, 3)

	for i := 0; i < 10; i++ {
		a := &models.Account{Name: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("u%d@example.com", i)}
		a.SetPassword("secret123")
		if i < 3 {
			a.SetSubscription(fmt.Sprintf("sub_%d", i), types.SubscriptionStatusActive)
		} else if i < 5 {
			a.SetSubscription(fmt.Sprintf("sub_%d", i), types.SubscriptionStatusCreated)
		}
		require.NoError(t, e.accounts.Create(ctx, a))
	}
	for _, v := range []int64{400, 15, 5} {
		require.NoError(t, e.courses.Create(ctx, &models.Course{Title: "c", Description: "d", Category: "x", CreatedBy: "ada", Views: v}))
	}

	before, err := e.stats.LatestN(ctx, 3)
	require.NoError(t, err)

	e.now = e.now.Add(time.Hour)
	snap, err := e.svc.Recompute(ctx)
	require.NoError(t, err)
	assert.Equal(t, before[0].ID, snap.ID)
	assert.Equal(t, int64(10), snap.Users)
	assert.Equal(t, int64(3), snap.Subscription)
	assert.Equal(t, int64(420), snap.Views)
	assert.True(t, snap.CreatedAt.Equal(e.now))

	after, err := e.stats.LatestN(ctx, 3)
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, int64(10), after[0].Users)
	for i := 1; i < 3; i++ {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Users, after[i].Users)
		assert.True(t, before[i].CreatedAt.Equal(after[i].CreatedAt))
	}
	n, err := e.stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRecompute_Idempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.svc.EnsureSnapshot(ctx))
	a := &models.Account{Name: "ada", Email: "ada@example.com"}
	a.SetPassword("secret123")
	require.NoError(t, e.accounts.Create(ctx, a))

	first, err := e.svc.Recompute(ctx)
	require.NoError(t, err)
	second, err := e.svc.Recompute(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, [3]int64{first.Users, first.Subscription, first.Views}, [3]int64{second.Users, second.Subscription, second.Views})
}

func TestHandleChange_IgnoresOtherCollections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.svc.EnsureSnapshot(ctx))
	require.NoError(t, e.courses.Create(ctx, &models.Course{Title: "c", Description: "d", Category: "x", CreatedBy: "ada", Views: 7}))

	e.svc.HandleChange(ctx, changefeed.Event{Collection: "payment", Operation: changefeed.OperationInsert})
	latest, err := e.stats.Latest(ctx)
	require.NoError(t, err)
	assert.Zero(t, latest.Views)

	e.svc.HandleChange(ctx, changefeed.NewEvent(changefeed.CollectionCourse, changefeed.OperationUpdate))
	latest, err = e.stats.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), latest.Views)
}

func TestHandleChange_ThroughGormCallbacks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.svc.EnsureSnapshot(ctx))

	bus := changefeed.NewLocalBus(zap.NewNop().Sugar())
	bus.Subscribe(e.svc.HandleChange)
	require.NoError(t, bus.Start(ctx))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })
	require.NoError(t, changefeed.RegisterCallbacks(e.db, bus, zap.NewNop().Sugar()))

	a := &models.Account{Name: "ada", Email: "ada@example.com"}
	a.SetPassword("secret123")
	require.NoError(t, e.accounts.Create(ctx, a))

	require.Eventually(t, func() bool {
		latest, err := e.stats.Latest(ctx)
		return err == nil && latest.Users == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSnapshot_AppendsFilledSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedSnapshots(t, 1)
	require.NoError(t, e.courses.Create(ctx, &models.Course{Title: "c", Description: "d", Category: "x", CreatedBy: "ada", Views: 7}))

	snap, err := e.svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), snap.Views)

	n, err := e.stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	latest, err := e.stats.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, latest.ID)
}

// gatedCounter parks the first Count call until release is closed.
type gatedCounter struct {
	AccountCounter
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedCounter) Count(ctx context.Context) (int64, error) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.AccountCounter.Count(ctx)
}

func TestTick_DuringRecomputeKeepsNewSnapshotLatest(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedSnapshots(t, 1)
	old, err := e.stats.Latest(ctx)
	require.NoError(t, err)

	var clock atomic.Int64
	e.svc.now = func() time.Time { return e.now.Add(time.Duration(clock.Add(1)) * time.Second) }
	gate := &gatedCounter{AccountCounter: e.accounts, entered: make(chan struct{}), release: make(chan struct{})}
	e.svc.accounts = gate

	recomputed := make(chan error, 1)
	go func() {
		_, err := e.svc.Recompute(ctx)
		recomputed <- err
	}()
	<-gate.entered

	ticked := make(chan error, 1)
	go func() { ticked <- e.svc.Tick(ctx) }()
	close(gate.release)
	require.NoError(t, <-recomputed)
	require.NoError(t, <-ticked)

	latest, err := e.stats.Latest(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, latest.ID)
	assert.Zero(t, latest.Users)

	// the next change event lands on the new period
	snap, err := e.svc.Recompute(ctx)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, snap.ID)
	n, err := e.stats.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRecompute_NeverMovesTimestampBackwards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.stats.Append(ctx, &models.StatsSnapshot{CreatedAt: e.now.Add(time.Hour)}))

	snap, err := e.svc.Recompute(ctx)
	require.NoError(t, err)
	assert.True(t, snap.CreatedAt.Equal(e.now.Add(time.Hour)))
}
