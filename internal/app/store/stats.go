package store

import (
	"context"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/tool"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type StatsStore struct {
	db *gorm.DB
}

func NewStatsStore(db *gorm.DB) *StatsStore { return &StatsStore{db: db} }

// Append inserts a new snapshot. A zero CreatedAt is set by gorm.
func (s *StatsStore) Append(ctx context.Context, snap *models.StatsSnapshot) error {
	if snap.ID == "" {
		snap.ID = tool.GenerateUUIDV7()
	}
	return translate(s.db.WithContext(ctx).Create(snap).Error, "append stats snapshot")
}

// Latest returns the most recent snapshot by creation time.
func (s *StatsStore) Latest(ctx context.Context) (*models.StatsSnapshot, error) {
	snaps, err := s.LatestN(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "latest stats snapshot")
	}
	return snaps[0], nil
}

// LatestN returns at most n snapshots, newest first.
func (s *StatsStore) LatestN(ctx context.Context, n int) ([]*models.StatsSnapshot, error) {
	var snaps []*models.StatsSnapshot
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(n).Find(&snaps).Error
	if err != nil {
		return nil, translate(err, "list stats snapshots")
	}
	return lo.Compact(snaps), nil
}

func (s *StatsStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.StatsSnapshot{}).Count(&n).Error
	return n, translate(err, "count stats snapshots")
}

// Save overwrites snap in place.
func (s *StatsStore) Save(ctx context.Context, snap *models.StatsSnapshot) error {
	return translate(s.db.WithContext(ctx).Save(snap).Error, "save stats snapshot")
}
