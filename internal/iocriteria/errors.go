package iocriteria

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/errcode"
)

// CriteriaReadError creates an error for a criteria file that cannot
// be read or decoded.
func CriteriaReadError(path string, err error) error {
	msg := `Cannot read filter criteria

<em>File path:</em> %s

Allowed keys: country, start_date, end_date, area, epi_week, lineage.`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CriteriaReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read criteria %s: %w", path, err),
	}
}
