package models

import (
	"time"

	"gorm.io/datatypes"
)

type Lecture struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Video       Media  `json:"video"`
}

// Course is a catalog entry. Views only grows: it is bumped once per lecture read.
type Course struct {
	ID          string                       `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Title       string                       `gorm:"column:title;type:varchar(128);not null" json:"title"`
	Description string                       `gorm:"column:description;type:text;not null" json:"description"`
	Category    string                       `gorm:"column:category;type:varchar(64);not null" json:"category"`
	CreatedBy   string                       `gorm:"column:created_by;type:varchar(128);not null" json:"created_by"`
	Poster      datatypes.JSONType[Media]    `gorm:"column:poster;type:jsonb;default:'{}'" json:"poster"`
	Lectures    datatypes.JSONSlice[Lecture] `gorm:"column:lectures;type:jsonb;default:'[]'" json:"lectures,omitempty"`
	NumOfVideos int                          `gorm:"column:num_of_videos;not null;default:0" json:"num_of_videos"`
	Views       int64                        `gorm:"column:views;not null;default:0" json:"views"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func (Course) TableName() string {
	return "course"
}
