package filter

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/errcode"
)

// DateRangeError creates an error for start and end dates that are
// malformed or not in chronological order.
func DateRangeError(start, end string, err error) error {
	msg := `Invalid date range

<em>Start date:</em> %s
<em>End date:</em> %s

Both dates must be in YYYY-MM-DD format and start date
must not be later than end date.`
	vars := []any{start, end}

	return &gn.Error{
		Code: errcode.FilterDateRangeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid date range: %w", err),
	}
}

// EpiWeekError creates an error for epi_week values of unsupported
// shape or content.
func EpiWeekError(val any, err error) error {
	msg := `Invalid epi_week value <em>%v</em>

epi_week must be an integer, a list of integers or a set of integers.`
	vars := []any{val}

	return &gn.Error{
		Code: errcode.FilterEpiWeekError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid epi_week: %w", err),
	}
}
