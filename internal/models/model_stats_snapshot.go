package models

import "time"

// StatsSnapshot is one rollup of platform counts. CreatedAt is refreshed on
// every recompute, so it reads as "last updated".
type StatsSnapshot struct {
	ID           string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Users        int64     `gorm:"column:users;not null;default:0" json:"users"`
	Subscription int64     `gorm:"column:subscription;not null;default:0" json:"subscription"`
	Views        int64     `gorm:"column:views;not null;default:0" json:"views"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_stats_snapshot_created_at,sort:desc" json:"created_at"`
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshot"
}
