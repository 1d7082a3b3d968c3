package course

import (
	"context"
	"testing"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/app/store/storetest"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *store.CourseStore) {
	courses := store.NewCourseStore(storetest.NewDB(t))
	return NewService(courses, zap.NewNop().Sugar()), courses
}

func TestCreateValidates(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Create(context.Background(), CreateRequest{Title: "Go", Description: "d", Category: "dev"})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestListFiltersByKeywordAndCategory(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	for _, r := range []CreateRequest{
		{Title: "Intro to Go", Description: "d", Category: "Web Development", CreatedBy: "ada"},
		{Title: "Advanced Go", Description: "d", Category: "Systems", CreatedBy: "ada"},
		{Title: "React Basics", Description: "d", Category: "Web Development", CreatedBy: "bob"},
	} {
		_, err := s.Create(ctx, r)
		require.NoError(t, err)
	}

	res, err := s.List(ctx, ListRequest{Keyword: "go"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)

	res, err = s.List(ctx, ListRequest{Keyword: "GO", Category: "web"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Intro to Go", res.Items[0].Title)

	res, err = s.List(ctx, ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
}

func TestLecturesLifecycle(t *testing.T) {
	s, courses := newTestService(t)
	ctx := context.Background()
	c, err := s.Create(ctx, CreateRequest{Title: "Go", Description: "d", Category: "dev", CreatedBy: "ada"})
	require.NoError(t, err)

	lectures, err := s.Lectures(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, lectures)

	_, err = s.AddLecture(ctx, c.ID, AddLectureRequest{Title: "one"})
	require.ErrorIs(t, err, apperr.ErrValidation)
	updated, err := s.AddLecture(ctx, c.ID, AddLectureRequest{Title: "one", Description: "first"})
	require.NoError(t, err)
	_, err = s.AddLecture(ctx, c.ID, AddLectureRequest{Title: "two", Description: "second"})
	require.NoError(t, err)

	lectures, err = s.Lectures(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, lectures, 2)
	assert.NotEmpty(t, lectures[0].ID)

	got, err := courses.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumOfVideos)
	assert.Equal(t, int64(2), got.Views)

	require.NoError(t, s.DeleteLecture(ctx, c.ID, updated.Lectures[0].ID))
	require.ErrorIs(t, s.DeleteLecture(ctx, c.ID, updated.Lectures[0].ID), apperr.ErrNotFound)
	got, err = courses.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.NumOfVideos)

	require.NoError(t, s.Delete(ctx, c.ID))
	require.ErrorIs(t, s.Delete(ctx, c.ID), apperr.ErrNotFound)
	_, err = s.Lectures(ctx, c.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
