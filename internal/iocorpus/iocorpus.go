// Package iocorpus streams sequences from a FASTA corpus.
// The corpus is read forward only, one sequence at a time, so
// its size is not limited by available memory.
package iocorpus

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/cheggaaa/pb/v3"
)

// Option configures a Scanner.
type Option func(*Scanner)

// OptProgress shows a progress bar of read bytes in w.
func OptProgress(w io.Writer) Option {
	return func(s *Scanner) {
		s.progress = w
	}
}

// Scanner reads sequences of a FASTA corpus.
type Scanner struct {
	path     string
	progress io.Writer

	closers []io.Closer
	bar     *pb.ProgressBar
	sc      *seqio.Scanner
	seq     *linear.Seq
	count   int
	err     error
}

// Open prepares a corpus file for scanning. Files with ".gz" suffix
// are decompressed on the fly.
func Open(path string, opts ...Option) (*Scanner, error) {
	res := &Scanner{path: path}
	for _, opt := range opts {
		opt(res)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, CorpusReadError(path, err)
	}
	res.closers = append(res.closers, f)

	var r io.Reader = f
	if res.progress != nil {
		fi, err := f.Stat()
		if err != nil {
			res.Close()
			return nil, CorpusReadError(path, err)
		}
		res.bar = pb.New64(fi.Size()).
			SetTemplate(pb.Full).
			SetWriter(res.progress).
			Set("prefix", "Scanning corpus").
			Set(pb.Bytes, true).
			Set(pb.CleanOnFinish, true).
			Start()
		r = res.bar.NewProxyReader(f)
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			res.Close()
			return nil, CorpusReadError(path, err)
		}
		res.closers = append(res.closers, gz)
		r = gz
	}

	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	res.sc = seqio.NewScanner(fasta.NewReader(r, template))
	return res, nil
}

// Next advances to the next sequence. It returns false at the end of
// the corpus or on error.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.sc.Next() {
		s.seq = nil
		return false
	}
	seq, ok := s.sc.Seq().(*linear.Seq)
	if !ok {
		s.err = fmt.Errorf("unexpected sequence type %T", s.sc.Seq())
		s.seq = nil
		return false
	}
	s.seq = seq
	s.count++
	return true
}

// Seq returns the current sequence.
func (s *Scanner) Seq() *linear.Seq {
	return s.seq
}

// ID returns the identifier of the current sequence, the part of the
// header line before the first whitespace.
func (s *Scanner) ID() string {
	if s.seq == nil {
		return ""
	}
	return s.seq.ID
}

// Count returns the number of sequences read so far.
func (s *Scanner) Count() int {
	return s.count
}

// Err returns the first error met during scanning.
func (s *Scanner) Err() error {
	err := s.err
	if err == nil {
		err = s.sc.Error()
	}
	if err == nil {
		return nil
	}
	return CorpusReadError(s.path, err)
}

// Close releases the corpus file and finishes the progress bar.
func (s *Scanner) Close() error {
	if s.bar != nil {
		s.bar.Finish()
		s.bar = nil
	}
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}
