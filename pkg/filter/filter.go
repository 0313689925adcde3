// Package filter selects metadata records by sparse criteria.
// This is a pure package: it never mutates its input and performs no
// I/O. Diagnostics about skipped criteria go to an injected slog.Logger.
package filter

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/gnames/seqsel/pkg/record"
)

// Filter applies Criteria to metadata records.
type Filter interface {
	// Apply returns records that satisfy every applicable criterion,
	// in their original order. Validation problems (inconsistent date
	// range) abort the whole operation with an error and no records.
	// An empty result is a success.
	Apply(records []record.Record, c Criteria) ([]record.Record, error)
}

type filter struct {
	log *slog.Logger
}

// New creates a Filter. If log is nil, slog.Default() is used.
func New(log *slog.Logger) Filter {
	if log == nil {
		log = slog.Default()
	}
	return &filter{log: log}
}

func (f *filter) Apply(
	records []record.Record,
	c Criteria,
) ([]record.Record, error) {
	if err := validateRange(c.StartDate, c.EndDate); err != nil {
		return nil, err
	}

	for _, w := range c.Warnings() {
		f.log.Warn("Criterion is not applied",
			"criterion", w.Criterion,
			"value", w.Value,
			"reason", w.Message,
		)
	}

	res := slices.Clone(records)

	if country, ok := record.ParseCountry(c.Country); ok {
		res = keep(res, func(r record.Record) bool {
			return r.Adm1 == country.String()
		})
	}

	if c.StartDate != nil {
		if start, ok := c.StartDate.Time(); ok {
			res = keep(res, func(r record.Record) bool {
				return !r.SampleDate.Before(start)
			})
		}
	}

	if c.EndDate != nil {
		if end, ok := c.EndDate.Time(); ok {
			res = keep(res, func(r record.Record) bool {
				return !r.SampleDate.After(end)
			})
		}
	}

	if !c.EpiWeek.IsEmpty() {
		res = keep(res, func(r record.Record) bool {
			return c.EpiWeek.Contains(r.EpiWeek)
		})
	}

	f.log.Debug("Records filtered",
		"input", len(records),
		"output", len(res),
	)
	return res, nil
}

// validateRange checks dates only when both are given. Then both have
// to be valid and ordered.
func validateRange(start, end *DateArg) error {
	if start == nil || end == nil {
		return nil
	}
	s, okStart := start.Time()
	e, okEnd := end.Time()
	if !okStart || !okEnd {
		return DateRangeError(start.String(), end.String(),
			errors.New("start date or end date is not a date"))
	}
	if s.After(e) {
		return DateRangeError(start.String(), end.String(),
			errors.New("start date is after end date"))
	}
	return nil
}

// keep returns a new slice with records that match the predicate.
func keep(
	records []record.Record,
	match func(record.Record) bool,
) []record.Record {
	res := make([]record.Record, 0, len(records))
	for _, r := range records {
		if match(r) {
			res = append(res, r)
		}
	}
	return res
}
