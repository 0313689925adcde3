package ioextract

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/errcode"
)

// EmptySelectionError creates an error for an extraction without
// selected records.
func EmptySelectionError() error {
	msg := `No records were selected

Relax the filter criteria and try again.`

	return &gn.Error{
		Code: errcode.EmptySelectionError,
		Msg:  msg,
		Err:  errors.New("cannot extract sequences of an empty selection"),
	}
}

// SchemaMismatchError creates an error for a selection where a record
// has columns different from the first record.
func SchemaMismatchError(idx int, name string) error {
	msg := `Selected records have different columns

<em>Record:</em> %d (%s)

All records must share the columns of the first record.`
	vars := []any{idx, name}

	return &gn.Error{
		Code: errcode.SchemaMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"record %d (%s) columns differ from the first record",
			idx, name,
		),
	}
}
