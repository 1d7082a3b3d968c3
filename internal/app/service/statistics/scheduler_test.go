package statistics

import (
	"testing"
	"time"

	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_MonthlyNextRun(t *testing.T) {
	e := newEnv(t)
	cfg := &config.Config{Stats: config.StatsConfig{SnapshotCron: "0 0 0 5 * *", Timezone: "UTC"}}

	s, err := NewScheduler(cfg, e.svc, zap.NewNop().Sugar())
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Stop() })

	next, err := s.NextRun()
	require.NoError(t, err)
	next = next.UTC()
	assert.Equal(t, 5, next.Day())
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestScheduler_RejectsBadConfig(t *testing.T) {
	e := newEnv(t)
	log := zap.NewNop().Sugar()

	_, err := NewScheduler(&config.Config{Stats: config.StatsConfig{SnapshotCron: "not a cron"}}, e.svc, log)
	require.Error(t, err)

	_, err = NewScheduler(&config.Config{Stats: config.StatsConfig{SnapshotCron: "0 0 0 5 * *", Timezone: "Mars/Olympus"}}, e.svc, log)
	require.Error(t, err)
}
