// Package iomanifest reads and writes sequences.txt manifests.
package iomanifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gnames/seqsel/pkg/manifest"
)

// Write saves rows as a tab-delimited manifest with a header.
func Write(path string, rows []manifest.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ManifestWriteError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ManifestWriteError(path, cerr)
		}
	}()

	if err = Encode(f, rows); err != nil {
		return ManifestWriteError(path, err)
	}
	return nil
}

// Encode writes a manifest to w.
func Encode(w io.Writer, rows []manifest.Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(manifest.Header); err != nil {
		return err
	}
	for _, v := range rows {
		if err := cw.Write(v.Strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read loads rows of the manifest at path.
func Read(path string) ([]manifest.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ManifestReadError(path, err)
	}
	defer f.Close()

	res, err := Decode(f)
	if err != nil {
		return nil, ManifestReadError(path, err)
	}
	return res, nil
}

// Decode reads a manifest from r.
func Decode(r io.Reader) ([]manifest.Row, error) {
	rd := csv.NewReader(r)
	rd.Comma = '\t'
	rd.FieldsPerRecord = len(manifest.Header)

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty manifest")
	}
	if err != nil {
		return nil, err
	}
	if !slices.Equal(header, manifest.Header) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var res []manifest.Row
	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		res = append(res, manifest.Row{
			SeqName:        row[0],
			AlnName:        row[1],
			SeqPath:        row[2],
			AnnotationPath: row[3],
		})
	}
	return res, nil
}

// Check returns seq_name of rows whose seq_path does not point to a
// regular file.
func Check(rows []manifest.Row) []string {
	var res []string
	for _, v := range rows {
		fi, err := os.Stat(v.SeqPath)
		if err != nil || !fi.Mode().IsRegular() {
			res = append(res, v.SeqName)
		}
	}
	return res
}
