package statistics

import (
	"context"
	"fmt"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/samber/lo"
)

type DashboardStats struct {
	Stats                  []*models.StatsSnapshot `json:"stats"`
	UsersCount             int64                   `json:"usersCount"`
	SubscriptionCount      int64                   `json:"subscriptionCount"`
	ViewsCount             int64                   `json:"viewsCount"`
	UsersPercentage        float64                 `json:"usersPercentage"`
	SubscriptionPercentage float64                 `json:"subscriptionPercentage"`
	ViewsPercentage        float64                 `json:"viewsPercentage"`
	UsersProfit            bool                    `json:"usersProfit"`
	SubscriptionProfit     bool                    `json:"subscriptionProfit"`
	ViewsProfit            bool                    `json:"viewsProfit"`
}

// DashboardStats returns the trailing window of snapshots, oldest first,
// left-padded with zero placeholders, plus the trend of the last period.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	recent, err := s.snapshots.LatestN(ctx, s.window)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	window := padWindow(lo.Reverse(recent), s.window)

	last, prev := window[len(window)-1], window[len(window)-2]
	out := &DashboardStats{
		Stats:             window,
		UsersCount:        last.Users,
		SubscriptionCount: last.Subscription,
		ViewsCount:        last.Views,
	}
	out.UsersPercentage, out.UsersProfit = trend(prev.Users, last.Users)
	out.SubscriptionPercentage, out.SubscriptionProfit = trend(prev.Subscription, last.Subscription)
	out.ViewsPercentage, out.ViewsProfit = trend(prev.Views, last.Views)
	return out, nil
}

// padWindow prepends unsaved zero snapshots until the window has size entries.
func padWindow(snaps []*models.StatsSnapshot, size int) []*models.StatsSnapshot {
	if len(snaps) >= size {
		return snaps[len(snaps)-size:]
	}
	pad := lo.Times(size-len(snaps), func(int) *models.StatsSnapshot { return &models.StatsSnapshot{} })
	return append(pad, snaps...)
}

// trend is the percentage change from prev to last. Each metric is checked
// for a zero baseline on its own; a zero baseline counts last*100.
func trend(prev, last int64) (percentage float64, profit bool) {
	if prev == 0 {
		percentage = float64(last) * 100
	} else {
		percentage = float64(last-prev) / float64(prev) * 100
	}
	return percentage, percentage >= 0
}
