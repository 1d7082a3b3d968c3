package types

import (
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

type CommonFilterOperator string

const (
	CommonFilterOperatorEq       CommonFilterOperator = "eq"
	CommonFilterOperatorNotEq    CommonFilterOperator = "not_eq"
	CommonFilterOperatorLt       CommonFilterOperator = "lt"
	CommonFilterOperatorGt       CommonFilterOperator = "gt"
	CommonFilterOperatorIn       CommonFilterOperator = "in"
	CommonFilterOperatorContains CommonFilterOperator = "contains"
	CommonFilterOperatorIsNull   CommonFilterOperator = "is_null"
)

type CommonFilter struct {
	Field    string               `json:"field"`
	Operator CommonFilterOperator `json:"operator"`
	Values   []any                `json:"values"`
}

// Build constructs a GORM expression. Filters without values are skipped,
// except is_null which takes none.
func (f *CommonFilter) Build(builder clause.Builder) {
	if f.Operator == CommonFilterOperatorIsNull {
		clause.Expr{SQL: "? IS NULL", Vars: []any{clause.Column{Name: f.Field}}}.Build(builder)
		return
	}
	if len(f.Values) == 0 {
		return
	}

	value := f.Values[0]

	switch f.Operator {
	case CommonFilterOperatorEq:
		clause.Eq{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorNotEq:
		clause.Neq{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorLt:
		clause.Lt{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorGt:
		clause.Gt{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorIn:
		clause.IN{Column: f.Field, Values: f.Values}.Build(builder)
	case CommonFilterOperatorContains:
		// case-insensitive substring match, portable across postgres and sqlite
		pattern := "%" + strings.ToLower(fmt.Sprint(value)) + "%"
		clause.Expr{SQL: "LOWER(?) LIKE ?", Vars: []any{clause.Column{Name: f.Field}, pattern}}.Build(builder)
	}
}

// Empty reports whether the filter would render nothing. Unknown operators
// render nothing.
func (f *CommonFilter) Empty() bool {
	if f == nil {
		return true
	}
	switch f.Operator {
	case CommonFilterOperatorIsNull:
		return false
	case CommonFilterOperatorEq, CommonFilterOperatorNotEq, CommonFilterOperatorLt,
		CommonFilterOperatorGt, CommonFilterOperatorIn, CommonFilterOperatorContains:
		return len(f.Values) == 0
	}
	return true
}
