package store

import (
	"context"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/tool"
	"gorm.io/gorm"
)

var courseColumns = map[string]bool{
	"title": true, "category": true, "created_by": true, "views": true, "created_at": true,
}

type CourseStore struct {
	db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore { return &CourseStore{db: db} }

func (s *CourseStore) Create(ctx context.Context, c *models.Course) error {
	if c.ID == "" {
		c.ID = tool.GenerateUUIDV7()
	}
	return translate(s.db.WithContext(ctx).Create(c).Error, "create course")
}

func (s *CourseStore) Save(ctx context.Context, c *models.Course) error {
	c.NumOfVideos = len(c.Lectures)
	return translate(s.db.WithContext(ctx).Save(c).Error, "save course")
}

func (s *CourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var c models.Course
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&c).Error; err != nil {
		return nil, translate(err, "find course")
	}
	return &c, nil
}

// List returns courses without their lectures.
func (s *CourseStore) List(ctx context.Context, req *ListRequest) (*ListResult[models.Course], error) {
	res, err := list[models.Course](s.db.WithContext(ctx), req, courseColumns, "lectures")
	return res, translate(err, "list courses")
}

// IncrementViews bumps the view counter of one course by one.
func (s *CourseStore) IncrementViews(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return translate(res.Error, "increment course views")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "increment course views")
	}
	return nil
}

func (s *CourseStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Course{})
	if res.Error != nil {
		return translate(res.Error, "delete course")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete course")
	}
	return nil
}

// SumViews totals the view counters of every course.
func (s *CourseStore) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Course{}).Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, translate(err, "sum course views")
}
