package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Fields resolves a column name to the value a row stores under it.
type Fields func(name string) (value any, ok bool)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null is_not_null"`
}

// Match reports whether the row exposed by fields satisfies the filter.
// Unknown columns never match.
func (f *Filter) Match(fields Fields) bool {
	value, ok := fields(f.Field)
	if !ok {
		return false
	}

	switch f.Operator {
	case FilterOperatorEq:
		return equal(value, f.Value)
	case FilterOperatorNotEq:
		return !equal(value, f.Value)
	case FilterOperatorLike:
		left, lok := normalize(value).(string)
		right, rok := normalize(f.Value).(string)

		return lok && rok && strings.Contains(strings.ToLower(left), strings.ToLower(right))
	case FilterOperatorIn:
		list := reflect.ValueOf(f.Value)
		if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
			return equal(value, f.Value)
		}

		for idx := range list.Len() {
			if equal(value, list.Index(idx).Interface()) {
				return true
			}
		}

		return false
	case FilterOperatorLessEq:
		cmp, ok := compare(value, f.Value)

		return ok && cmp <= 0
	case FilterOperatorGreaterEq:
		cmp, ok := compare(value, f.Value)

		return ok && cmp >= 0
	case FilterIsNull:
		return isNull(value)
	case FilterIsNotNull:
		return !isNull(value)
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match evaluates nested filters and groups. An empty group matches every row;
// the group operator defaults to AND.
func (f *FilterGroup) Match(fields Fields) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyMatch := false

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(fields)
		case FilterGroup:
			matched = fill.Match(fields)
		default:
			continue
		}

		if f.Operator == FilterGroupOperatorOr {
			anyMatch = anyMatch || matched

			continue
		}

		if !matched {
			return false
		}
	}

	if f.Operator == FilterGroupOperatorOr {
		return anyMatch
	}

	return true
}

// Compare orders two column values. The boolean is false when the values
// are not comparable (different kinds, bools, nil).
func Compare(left, right any) (int, bool) {
	return compare(left, right)
}

func equal(left, right any) bool {
	if cmp, ok := compare(left, right); ok {
		return cmp == 0
	}

	return reflect.DeepEqual(normalize(left), normalize(right))
}

func compare(left, right any) (int, bool) {
	lv, rv := normalize(left), normalize(right)

	switch l := lv.(type) {
	case string:
		if r, ok := rv.(string); ok {
			return strings.Compare(l, r), true
		}
	case decimal.Decimal:
		if r, ok := rv.(decimal.Decimal); ok {
			return l.Cmp(r), true
		}
	case time.Time:
		if r, ok := rv.(time.Time); ok {
			return l.Compare(r), true
		}
	}

	return 0, false
}

// normalize collapses named string types, every numeric kind and pointers so
// that filter values written as plain literals compare against typed fields.
func normalize(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time, decimal.Decimal:
		return v
	case *time.Time:
		if v == nil {
			return nil
		}

		return *v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}

		return *v
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}

		return normalize(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(rv.Float())
	default:
		return value
	}
}

func isNull(value any) bool {
	normalized := normalize(value)
	if normalized == nil {
		return true
	}

	if s, ok := normalized.(string); ok {
		return s == ""
	}

	return false
}

func (f Filter) String() string {
	return fmt.Sprintf("%s %s %v", f.Field, f.Operator, f.Value)
}
