// Package iometa reads and writes metadata tables of genomic samples.
// This is an impure I/O package.
package iometa

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/seqsel/pkg/record"
	"github.com/gnames/seqsel/pkg/seqsel"
)

type iometa struct{}

// New creates a MetadataLoader for comma-delimited tables.
func New() seqsel.MetadataLoader {
	return &iometa{}
}

// Load reads all rows of the metadata table at path.
func (m *iometa) Load(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, MetadataReadError(path, err)
	}
	defer f.Close()

	res, err := Read(f, path)
	if err != nil {
		return nil, err
	}

	slog.Info("Metadata loaded", "path", path, "records", len(res))
	return res, nil
}

// Read parses a metadata table from r. The name is used in error
// messages only.
func Read(r io.Reader, name string) ([]record.Record, error) {
	rd := csv.NewReader(r)
	rd.ReuseRecord = true

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, MetadataReadError(name, errors.New("empty table"))
	}
	if err != nil {
		return nil, MetadataReadError(name, err)
	}
	header = normalizeHeader(header)

	var res []record.Record
	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, MetadataReadError(name, err)
		}

		fields := make([]record.Field, len(header))
		for i := range header {
			fields[i] = record.Field{Name: header[i], Value: row[i]}
		}

		rec, err := record.New(fields)
		if err != nil {
			line, _ := rd.FieldPos(0)
			return nil, RecordParseError(name, line, err)
		}
		res = append(res, rec)
	}
	return res, nil
}

// Write saves records as a comma-delimited table. The header comes from
// the first record; all records must share its columns.
func Write(w io.Writer, records []record.Record) error {
	if len(records) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(records[0].Columns()); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile saves records to a metadata table at path.
func WriteFile(path string, records []record.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return MetadataWriteError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = MetadataWriteError(path, cerr)
		}
	}()

	if err = Write(f, records); err != nil {
		return MetadataWriteError(path, err)
	}
	return nil
}

// normalizeHeader removes a UTF-8 byte order mark and surrounding
// spaces from column names.
func normalizeHeader(header []string) []string {
	res := make([]string, len(header))
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		res[i] = strings.TrimSpace(v)
	}
	return res
}
