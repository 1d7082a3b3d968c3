// Package course implements the course catalog: listing, creation,
// lecture reads and lecture management.
package course

import (
	"context"
	"errors"
	"strings"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/fatflowers/coursehub/pkg/tool"
	"github.com/fatflowers/coursehub/pkg/types"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ListRequest filters the catalog. Both terms match case-insensitively as
// substrings and are combined with AND.
type ListRequest struct {
	Keyword  string `form:"keyword" json:"keyword"`
	Category string `form:"category" json:"category"`
	From     int    `form:"from" json:"from"`
	Size     int    `form:"size" json:"size"`
}

type CreateRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	CreatedBy   string       `json:"createdBy"`
	Poster      models.Media `json:"poster"`
}

type AddLectureRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Video       models.Media `json:"video"`
}

type Service struct {
	courses *store.CourseStore
	log     *zap.SugaredLogger
}

func NewService(courses *store.CourseStore, log *zap.SugaredLogger) *Service {
	return &Service{courses: courses, log: log}
}

func (s *Service) List(ctx context.Context, req ListRequest) (*store.ListResult[models.Course], error) {
	return s.courses.List(ctx, &store.ListRequest{
		Filters: []*types.CommonFilter{
			contains("title", req.Keyword),
			contains("category", req.Category),
		},
		From: req.From,
		Size: req.Size,
	})
}

func contains(field, term string) *types.CommonFilter {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	return &types.CommonFilter{Field: field, Operator: types.CommonFilterOperatorContains, Values: []any{term}}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Course, error) {
	if blank(req.Title, req.Description, req.Category, req.CreatedBy) {
		return nil, apperr.Validation("Please add all fields")
	}
	c := &models.Course{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		CreatedBy:   strings.TrimSpace(req.CreatedBy),
		Poster:      datatypes.NewJSONType(req.Poster),
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("course created", "course_id", c.ID)
	return c, nil
}

// Lectures returns the lectures of a course and counts the read as a view.
func (s *Service) Lectures(ctx context.Context, id string) ([]models.Lecture, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.courses.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	if c.Lectures == nil {
		return []models.Lecture{}, nil
	}
	return c.Lectures, nil
}

func (s *Service) AddLecture(ctx context.Context, id string, req AddLectureRequest) (*models.Course, error) {
	if blank(req.Title, req.Description) {
		return nil, apperr.Validation("Please add all fields")
	}
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Lectures = append(c.Lectures, models.Lecture{
		ID:          tool.GenerateUUIDV7(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Video:       req.Video,
	})
	if err := s.courses.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteLecture(ctx context.Context, courseID, lectureID string) error {
	c, err := s.find(ctx, courseID)
	if err != nil {
		return err
	}
	kept := make([]models.Lecture, 0, len(c.Lectures))
	for _, l := range c.Lectures {
		if l.ID != lectureID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(c.Lectures) {
		return apperr.NotFound("Lecture not found")
	}
	c.Lectures = kept
	return s.courses.Save(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.courses.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Course not found")
	}
	if err == nil {
		logctx.FromCtx(ctx, s.log).Infow("course deleted", "course_id", id)
	}
	return err
}

func (s *Service) find(ctx context.Context, id string) (*models.Course, error) {
	c, err := s.courses.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Course not found")
	}
	return c, err
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

var Module = fx.Options(
	fx.Provide(NewService),
)
