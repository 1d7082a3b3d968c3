// Package store holds the gorm-backed persistence for accounts, courses,
// ledger entries and statistics snapshots.
package store

import (
	"errors"
	"fmt"

	"github.com/fatflowers/coursehub/pkg/types"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	// ErrUnknownColumn is returned when a listing filters on a column the
	// store does not expose.
	ErrUnknownColumn = errors.New("unknown column")
)

// translate maps gorm sentinel errors onto the store's own.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// filtersAnd combines non-empty CommonFilters into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		if !f.Empty() {
			exprs = append(exprs, f)
		}
	}
	if len(exprs) == 0 {
		builder.WriteString("1=1")
		return
	}
	clause.And(exprs...).Build(builder)
}

// ListRequest is a paginated, filtered listing.
type ListRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ListResult[T any] struct {
	Items []*T  `json:"items"`
	Total int64 `json:"total"`
}

// list runs req against model T. Filters and sorting are limited to columns.
func list[T any](q *gorm.DB, req *ListRequest, columns map[string]bool, omit ...string) (*ListResult[T], error) {
	if req == nil {
		req = &ListRequest{}
	}
	for _, f := range req.Filters {
		if f != nil && !columns[f.Field] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, f.Field)
		}
	}
	if req.Size <= 0 || req.Size > 100 {
		req.Size = 20
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := q.Model(new(T))
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	sortBy := "created_at"
	if columns[req.SortBy] {
		sortBy = req.SortBy
	}
	rows := make([]*T, 0)
	find := tx.Limit(req.Size).Offset(req.From).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})
	if len(omit) > 0 {
		find = find.Omit(omit...)
	}
	if err := find.Find(&rows).Error; err != nil {
		return nil, err
	}
	return &ListResult[T]{Items: rows, Total: total}, nil
}

var Module = fx.Options(
	fx.Provide(
		NewAccountStore,
		NewCourseStore,
		NewPaymentStore,
		NewStatsStore,
	),
)
