package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gnames/seqsel/pkg/record"
)

// Criteria is a sparse set of predicates. Every field is optional, an
// absent field (empty string, nil date, empty EpiWeeks) imposes no
// constraint. Present fields are combined with AND.
type Criteria struct {
	// Country keeps records with equal adm1. Unknown codes are reported
	// by Warnings and the criterion is not applied.
	Country string

	// StartDate keeps records sampled on or after the date.
	StartDate *DateArg

	// EndDate keeps records sampled on or before the date.
	EndDate *DateArg

	// Area is reserved. It is accepted but not applied.
	Area string

	// EpiWeek keeps records with epi_week in the set.
	EpiWeek EpiWeeks

	// Lineage is accepted but not applied yet.
	Lineage string
}

// Warning describes a criterion that will be skipped.
type Warning struct {
	Criterion string
	Value     string
	Message   string
}

// Warnings returns non-fatal problems of the criteria. Criteria
// mentioned here are skipped by Apply.
func (c Criteria) Warnings() []Warning {
	var res []Warning
	if c.Country != "" {
		if _, ok := record.ParseCountry(c.Country); !ok {
			var codes []string
			for _, v := range record.Countries {
				codes = append(codes, v.String())
			}
			res = append(res, Warning{
				Criterion: "country",
				Value:     c.Country,
				Message: "unknown country code, valid codes are " +
					strings.Join(codes, ", "),
			})
		}
	}
	if c.StartDate != nil && !c.StartDate.valid {
		res = append(res, Warning{
			Criterion: "startdate",
			Value:     c.StartDate.raw,
			Message:   "not a date in " + record.DateLayout + " format",
		})
	}
	if c.EndDate != nil && !c.EndDate.valid {
		res = append(res, Warning{
			Criterion: "enddate",
			Value:     c.EndDate.raw,
			Message:   "not a date in " + record.DateLayout + " format",
		})
	}
	if c.Area != "" {
		res = append(res, Warning{
			Criterion: "area",
			Value:     c.Area,
			Message:   "area filter is not implemented",
		})
	}
	if c.Lineage != "" {
		res = append(res, Warning{
			Criterion: "lineage",
			Value:     c.Lineage,
			Message:   "lineage filter is not implemented",
		})
	}
	return res
}

// DateArg is a date criterion. It remembers the raw input so malformed
// dates can be reported instead of silently dropped.
type DateArg struct {
	raw   string
	t     time.Time
	valid bool
}

// Date creates a valid date criterion. The time of day is discarded.
func Date(t time.Time) *DateArg {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &DateArg{raw: day.Format(record.DateLayout), t: day, valid: true}
}

// ParseDate creates a date criterion from YYYY-MM-DD text. Empty input
// means no criterion and returns nil. Malformed input returns an
// invalid DateArg.
func ParseDate(s string) *DateArg {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(record.DateLayout, s)
	if err != nil {
		return &DateArg{raw: s}
	}
	return &DateArg{raw: s, t: t, valid: true}
}

// Time returns the date and true if the criterion is a valid date.
func (d *DateArg) Time() (time.Time, bool) {
	return d.t, d.valid
}

// String returns the raw input.
func (d *DateArg) String() string {
	return d.raw
}

// EpiWeeks is a set of epidemiological weeks. The zero value is an
// absent criterion.
type EpiWeeks struct {
	set map[int]struct{}
}

// Week creates a criterion of a single week. Week 0 means no
// criterion.
func Week(w int) EpiWeeks {
	if w == 0 {
		return EpiWeeks{}
	}
	return Weeks(w)
}

// Weeks creates a criterion from a list of weeks.
func Weeks(ww ...int) EpiWeeks {
	res := EpiWeeks{set: make(map[int]struct{}, len(ww))}
	for _, w := range ww {
		res.set[w] = struct{}{}
	}
	return res
}

// WeekSet creates a criterion from a set of weeks.
func WeekSet(set map[int]struct{}) EpiWeeks {
	return EpiWeeks{set: maps.Clone(set)}
}

// ParseEpiWeeks converts a dynamically typed value (from YAML or
// flags) to EpiWeeks. It accepts an integer, a list of integers or a
// set of integers. A YAML set (!!set) arrives as a mapping with
// integer keys. Anything else is a validation error. A scalar 0 means
// no criterion.
func ParseEpiWeeks(v any) (EpiWeeks, error) {
	switch w := v.(type) {
	case nil:
		return EpiWeeks{}, nil
	case int:
		return Week(w), nil
	case int64:
		return Week(int(w)), nil
	case []int:
		return Weeks(w...), nil
	case map[int]struct{}:
		return WeekSet(w), nil
	case map[int]bool:
		set := make(map[int]struct{}, len(w))
		for k, ok := range w {
			if ok {
				set[k] = struct{}{}
			}
		}
		return WeekSet(set), nil
	case map[any]any:
		set := make(map[int]struct{}, len(w))
		for k, val := range w {
			var n int
			switch kk := k.(type) {
			case int:
				n = kk
			case int64:
				n = int(kk)
			default:
				return EpiWeeks{}, EpiWeekError(v,
					fmt.Errorf("key %v is %T, not an integer", k, k))
			}
			if b, isBool := val.(bool); isBool && !b {
				continue
			}
			set[n] = struct{}{}
		}
		return WeekSet(set), nil
	case []any:
		ww := make([]int, 0, len(w))
		for i, el := range w {
			switch n := el.(type) {
			case int:
				ww = append(ww, n)
			case int64:
				ww = append(ww, int(n))
			default:
				return EpiWeeks{}, EpiWeekError(v,
					fmt.Errorf("element %d (%v) is %T, not an integer", i, el, el))
			}
		}
		return Weeks(ww...), nil
	default:
		return EpiWeeks{}, EpiWeekError(v,
			fmt.Errorf("%T is not an integer, list or set of integers", v))
	}
}

// IsEmpty is true when the criterion is absent.
func (e EpiWeeks) IsEmpty() bool {
	return len(e.set) == 0
}

// Contains checks if a week belongs to the set.
func (e EpiWeeks) Contains(w int) bool {
	_, ok := e.set[w]
	return ok
}

// Values returns sorted weeks of the set.
func (e EpiWeeks) Values() []int {
	return slices.Sorted(maps.Keys(e.set))
}
