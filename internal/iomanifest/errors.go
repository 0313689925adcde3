package iomanifest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/errcode"
)

// ManifestReadError creates an error for a manifest that cannot be
// read or has an unexpected layout.
func ManifestReadError(path string, err error) error {
	msg := `Cannot read manifest

<em>File path:</em> %s

Expected a tab-delimited file with columns
seq_name, aln_name, seq_path, annotation_path.`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ManifestReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read manifest %s: %w", path, err),
	}
}

// ManifestWriteError creates an error for a manifest that cannot be
// written.
func ManifestWriteError(path string, err error) error {
	msg := "Cannot write manifest <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write manifest %s: %w", path, err),
	}
}
