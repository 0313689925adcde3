// Package record defines metadata of a single genomic sample.
// This is a pure package: records are built from already read
// columns, parsing files is done by internal/iometa.
package record

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO layout of sample dates.
const DateLayout = "2006-01-02"

// Columns with typed meaning. Any other column is kept as raw text.
const (
	ColSequenceName   = "sequence_name"
	ColSampleDate     = "sample_date"
	ColEpiWeek        = "epi_week"
	ColLineageSupport = "lineage_support"
	ColAdm1           = "adm1"
)

// RequiredColumns must be present in every metadata table.
var RequiredColumns = []string{
	ColSequenceName, ColSampleDate, ColEpiWeek, ColAdm1,
}

// Field is one column of a metadata row.
type Field struct {
	Name  string
	Value string
}

// Record is the metadata of one genomic sample. Typed fields are parsed
// once at construction, all columns are kept in their original order.
// Record is immutable, copies are safe to share.
type Record struct {
	// SequenceName has a structure of "<Country>/<AreaCode+suffix>/...".
	SequenceName string

	// SampleDate is the date the sample was taken.
	SampleDate time.Time

	// EpiWeek is the epidemiological week of the sample.
	EpiWeek int

	// LineageSupport is the confidence of lineage assignment.
	// It is meaningful only if HasLineageSupport is true, otherwise
	// the raw text stays in the lineage_support column.
	LineageSupport    float64
	HasLineageSupport bool

	// Adm1 is the country code, for example UK-ENG.
	Adm1 string

	fields []Field
}

// New creates a Record from the columns of a metadata row.
// It fails if a required column is missing, or if sample_date or
// epi_week cannot be parsed.
func New(fields []Field) (Record, error) {
	res := Record{fields: slices.Clone(fields)}

	idx := make(map[string]string, len(fields))
	for _, v := range fields {
		idx[v.Name] = v.Value
	}
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			return Record{}, fmt.Errorf("missing column %q", col)
		}
	}

	res.SequenceName = idx[ColSequenceName]
	res.Adm1 = idx[ColAdm1]

	var err error
	date := strings.TrimSpace(idx[ColSampleDate])
	res.SampleDate, err = time.Parse(DateLayout, date)
	if err != nil {
		return Record{}, fmt.Errorf("cannot parse %s %q: %w",
			ColSampleDate, date, err)
	}

	week := strings.TrimSpace(idx[ColEpiWeek])
	res.EpiWeek, err = strconv.Atoi(week)
	if err != nil {
		return Record{}, fmt.Errorf("cannot parse %s %q: %w",
			ColEpiWeek, week, err)
	}

	if s, ok := idx[ColLineageSupport]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			res.LineageSupport = f
			res.HasLineageSupport = true
		}
	}

	return res, nil
}

// Columns returns names of all columns in their original order.
func (r Record) Columns() []string {
	res := make([]string, len(r.fields))
	for i, v := range r.fields {
		res[i] = v.Name
	}
	return res
}

// Fields returns a copy of all columns of the record.
func (r Record) Fields() []Field {
	return slices.Clone(r.fields)
}

// Value returns the text of a column. Dates are rendered in ISO format
// and epi weeks as integers, everything else is returned as it was read.
func (r Record) Value(name string) (string, bool) {
	switch name {
	case ColSampleDate:
		if !r.hasColumn(name) {
			return "", false
		}
		return r.SampleDate.Format(DateLayout), true
	case ColEpiWeek:
		if !r.hasColumn(name) {
			return "", false
		}
		return strconv.Itoa(r.EpiWeek), true
	}
	for _, v := range r.fields {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Values returns rendered values of all columns in their original order.
func (r Record) Values() []string {
	res := make([]string, len(r.fields))
	for i, v := range r.fields {
		res[i], _ = r.Value(v.Name)
	}
	return res
}

// SameSchema is true if both records have identical columns in the
// same order.
func (r Record) SameSchema(other Record) bool {
	if len(r.fields) != len(other.fields) {
		return false
	}
	for i := range r.fields {
		if r.fields[i].Name != other.fields[i].Name {
			return false
		}
	}
	return true
}

func (r Record) hasColumn(name string) bool {
	return slices.ContainsFunc(r.fields, func(f Field) bool {
		return f.Name == name
	})
}
