package iocorpus

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/errcode"
)

// CorpusReadError creates an error for a corpus that cannot be opened
// or parsed as FASTA.
func CorpusReadError(path string, err error) error {
	msg := `Cannot read sequence corpus

<em>File path:</em> %s

The corpus must be a FASTA file, optionally compressed with gzip.`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CorpusReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read corpus %s: %w", path, err),
	}
}
