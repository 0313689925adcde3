package iometa

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/errcode"
)

// MetadataReadError creates an error for metadata tables that cannot
// be opened or are not valid CSV.
func MetadataReadError(path string, err error) error {
	msg := `Cannot read metadata table

<em>File path:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Not a comma-delimited table with a header
  - Rows have different number of columns`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.MetadataReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read metadata %s: %w", path, err),
	}
}

// RecordParseError creates an error for a row with a missing column or
// with sample_date or epi_week that cannot be parsed.
func RecordParseError(path string, line int, err error) error {
	msg := `Cannot parse metadata row

<em>File path:</em> %s
<em>Line:</em> %d

sample_date must be YYYY-MM-DD and epi_week must be an integer.`
	vars := []any{path, line}

	return &gn.Error{
		Code: errcode.RecordParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s, line %d: %w", path, line, err),
	}
}

// MetadataWriteError creates an error for a metadata table that cannot
// be written.
func MetadataWriteError(path string, err error) error {
	msg := "Cannot write metadata table <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write metadata %s: %w", path, err),
	}
}
