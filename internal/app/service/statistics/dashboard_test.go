package statistics

import (
	"context"
	"testing"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_NoSnapshotsIsAllZero(t *testing.T) {
	e := newEnv(t)

	res, err := e.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Stats, 12)
	for _, s := range res.Stats {
		assert.Equal(t, models.StatsSnapshot{}, *s)
	}
	assert.Zero(t, res.UsersCount)
	assert.Zero(t, res.UsersPercentage)
	assert.True(t, res.UsersProfit)
}

func TestDashboardStats_PadsShortHistory(t *testing.T) {
	e := newEnv(t)
	e.seedSnapshots(t, 3)

	res, err := e.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Stats, 12)
	for i := 0; i < 9; i++ {
		assert.Empty(t, res.Stats[i].ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, []int64{res.Stats[9].Users, res.Stats[10].Users, res.Stats[11].Users})
	assert.Equal(t, int64(3), res.UsersCount)
	assert.Equal(t, 50.0, res.UsersPercentage)
}

func TestDashboardStats_KeepsMostRecentWindow(t *testing.T) {
	e := newEnv(t)
	e.seedSnapshots(t, 15)

	res, err := e.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Stats, 12)
	// oldest first: snapshots 4..15
	for i, s := range res.Stats {
		assert.Equal(t, int64(i+4), s.Users)
	}
	assert.Equal(t, int64(15), res.UsersCount)
}

func TestTrend(t *testing.T) {
	cases := []struct {
		prev, last int64
		pct        float64
		profit     bool
	}{
		{0, 50, 5000, true},
		{100, 80, -20, false},
		{0, 0, 0, true},
		{4, 4, 0, true},
		{3, 4, 100.0 / 3, true},
	}
	for _, tc := range cases {
		pct, profit := trend(tc.prev, tc.last)
		assert.InDelta(t, tc.pct, pct, 1e-9, "prev=%d last=%d", tc.prev, tc.last)
		assert.Equal(t, tc.profit, profit, "prev=%d last=%d", tc.prev, tc.last)
	}
}

// A zero subscription baseline must not change how users and views are
// computed: every metric checks its own baseline.
func TestPercentages_IndependentZeroChecks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	base := e.now.AddDate(0, -2, 0)
	require.NoError(t, e.stats.Append(ctx, &models.StatsSnapshot{Users: 100, Subscription: 0, Views: 200, CreatedAt: base}))
	require.NoError(t, e.stats.Append(ctx, &models.StatsSnapshot{Users: 80, Subscription: 50, Views: 300, CreatedAt: base.AddDate(0, 1, 0)}))

	res, err := e.svc.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, res.SubscriptionPercentage)
	assert.True(t, res.SubscriptionProfit)
	assert.Equal(t, -20.0, res.UsersPercentage)
	assert.False(t, res.UsersProfit)
	assert.Equal(t, 50.0, res.ViewsPercentage)
	assert.True(t, res.ViewsProfit)
}
