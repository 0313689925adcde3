package ioextract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/internal/iocorpus"
	"github.com/gnames/seqsel/internal/iomanifest"
	"github.com/gnames/seqsel/internal/iometa"
	"github.com/gnames/seqsel/pkg/config"
	"github.com/gnames/seqsel/pkg/errcode"
	"github.com/gnames/seqsel/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `>A/AAA1 sample A
ACGTACGTAC
GTAC
>B/BBB1
GGGGCCCC
>C/CCC1 sample C
TTTTAAAA
>X/XXX9
NNNN
`

func newRecord(t *testing.T, name, date, week, adm1 string) record.Record {
	t.Helper()
	rec, err := record.New([]record.Field{
		{Name: "sequence_name", Value: name},
		{Name: "sample_date", Value: date},
		{Name: "epi_week", Value: week},
		{Name: "adm1", Value: adm1},
		{Name: "lineage", Value: "B.1"},
	})
	require.NoError(t, err)
	return rec
}

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.fasta")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newExtractor(opts ...config.Option) *ioextract {
	cfg := config.New()
	cfg.Update(opts)
	return New(cfg).(*ioextract)
}

// TestExtract_Example verifies output of selected England records
// of weeks 10 and 12.
func TestExtract_Example(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "A/AAA1", "2020-03-02", "10", "UK-ENG"),
		newRecord(t, "C/CCC1", "2020-03-16", "12", "UK-ENG"),
	}
	folder := filepath.Join(t.TempDir(), "out")

	sum, err := newExtractor().Extract(recs, writeCorpus(t, corpus), folder)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Selected)
	assert.Equal(t, 4, sum.Scanned)
	assert.Equal(t, 2, sum.Extracted)
	assert.Empty(t, sum.Missing)
	assert.Equal(t, 0, sum.Duplicates)
	assert.True(t, filepath.IsAbs(sum.Folder))

	entries, err := os.ReadDir(filepath.Join(folder, "genomes"))
	require.NoError(t, err)
	var names []string
	for _, v := range entries {
		names = append(names, v.Name())
	}
	assert.Equal(t, []string{"A_AAA1.fasta", "C_CCC1.fasta"}, names)

	rows, err := iomanifest.Read(filepath.Join(folder, ManifestFile))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A_AAA1", rows[0].SeqName)
	assert.Equal(t, "seq0", rows[0].AlnName)
	assert.Equal(t, "C_CCC1", rows[1].SeqName)
	assert.Equal(t, "seq1", rows[1].AlnName)
	for _, v := range rows {
		assert.True(t, filepath.IsAbs(v.SeqPath))
		assert.Equal(t, "NA", v.AnnotationPath)
	}
	assert.Empty(t, iomanifest.Check(rows))

	meta, err := iometa.New().Load(filepath.Join(folder, MetadataFile))
	require.NoError(t, err)
	require.Len(t, meta, 2)
	for i := range recs {
		assert.Equal(t, recs[i].Fields(), meta[i].Fields())
	}
}

// TestExtract_GenomeContent verifies a genome file keeps the header
// and residues of the corpus record.
func TestExtract_GenomeContent(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "A/AAA1", "2020-03-02", "10", "UK-ENG"),
	}
	folder := t.TempDir()
	ext := newExtractor(config.OptExtractLineWidth(5))

	_, err := ext.Extract(recs, writeCorpus(t, corpus), folder)
	require.NoError(t, err)

	path := filepath.Join(folder, "genomes", "A_AAA1.fasta")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, ">A/AAA1 sample A", lines[0])
	for _, v := range lines[1:] {
		assert.LessOrEqual(t, len(v), 5)
	}
	assert.Equal(t, "ACGTACGTACGTAC", strings.Join(lines[1:], ""))

	sc, err := iocorpus.Open(path)
	require.NoError(t, err)
	defer sc.Close()
	require.True(t, sc.Next())
	assert.Equal(t, "A/AAA1", sc.ID())
	assert.False(t, sc.Next())
}

// TestExtract_CorpusOrder verifies aln_name follows the order of
// sequences in the corpus, not the order of records.
func TestExtract_CorpusOrder(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "C/CCC1", "2020-03-16", "12", "UK-ENG"),
		newRecord(t, "A/AAA1", "2020-03-02", "10", "UK-ENG"),
	}
	folder := t.TempDir()

	_, err := newExtractor().Extract(recs, writeCorpus(t, corpus), folder)
	require.NoError(t, err)

	rows, err := iomanifest.Read(filepath.Join(folder, ManifestFile))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A_AAA1", rows[0].SeqName)
	assert.Equal(t, "C_CCC1", rows[1].SeqName)
}

// TestExtract_Missing verifies records absent from the corpus are
// reported and still written to metadata.csv.
func TestExtract_Missing(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "Z/ZZZ1", "2020-03-02", "10", "UK-ENG"),
		newRecord(t, "B/BBB1", "2020-03-09", "11", "UK-SCT"),
		newRecord(t, "Y/YYY1", "2020-03-09", "11", "UK-SCT"),
	}
	folder := t.TempDir()

	sum, err := newExtractor().Extract(recs, writeCorpus(t, corpus), folder)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Extracted)
	assert.Equal(t, []string{"Z/ZZZ1", "Y/YYY1"}, sum.Missing)

	rows, err := iomanifest.Read(filepath.Join(folder, ManifestFile))
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	meta, err := iometa.New().Load(filepath.Join(folder, MetadataFile))
	require.NoError(t, err)
	assert.Len(t, meta, 3)
}

// TestExtract_Duplicates verifies repeated corpus identifiers are
// extracted once.
func TestExtract_Duplicates(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "A/AAA1", "2020-03-02", "10", "UK-ENG"),
	}
	dup := corpus + ">A/AAA1 again\nCCCC\n"
	folder := t.TempDir()

	sum, err := newExtractor().Extract(recs, writeCorpus(t, dup), folder)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Extracted)
	assert.Equal(t, 1, sum.Duplicates)
	assert.Equal(t, 5, sum.Scanned)

	data, err := os.ReadFile(filepath.Join(folder, "genomes", "A_AAA1.fasta"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sample A")
	assert.NotContains(t, string(data), "again")
}

// TestExtract_NameCollision verifies identifiers that share a file
// name do not overwrite each other.
func TestExtract_NameCollision(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "A/B_C", "2020-03-02", "10", "UK-ENG"),
		newRecord(t, "A_B/C", "2020-03-02", "10", "UK-ENG"),
	}
	content := ">A/B_C first\nACGT\n>A_B/C second\nTTTT\n"
	folder := t.TempDir()

	sum, err := newExtractor().Extract(recs, writeCorpus(t, content), folder)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Extracted)
	assert.Equal(t, []string{"A_B/C"}, sum.Collisions)
	assert.Empty(t, sum.Missing)

	rows, err := iomanifest.Read(filepath.Join(folder, ManifestFile))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A_B_C", rows[0].SeqName)

	data, err := os.ReadFile(filepath.Join(folder, "genomes", "A_B_C.fasta"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.NotContains(t, string(data), "second")
}

// TestExtract_Rerun verifies extraction into an existing folder
// overwrites outputs and the same selection keeps its ID.
func TestExtract_Rerun(t *testing.T) {
	recs := []record.Record{
		newRecord(t, "A/AAA1", "2020-03-02", "10", "UK-ENG"),
	}
	folder := t.TempDir()
	path := writeCorpus(t, corpus)
	ext := newExtractor()

	sum1, err := ext.Extract(recs, path, folder)
	require.NoError(t, err)
	sum, err := ext.Extract(recs, path, folder)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Extracted)
	assert.NotEmpty(t, sum.SelectionID)
	assert.Equal(t, sum1.SelectionID, sum.SelectionID)

	recs = append(recs, newRecord(t, "C/CCC1", "2020-03-16", "12", "UK-ENG"))
	sum2, err := ext.Extract(recs, path, folder)
	require.NoError(t, err)
	assert.NotEqual(t, sum.SelectionID, sum2.SelectionID)

	rows, err := iomanifest.Read(filepath.Join(folder, ManifestFile))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

// TestExtract_Errors verifies failures that happen before any output
// is written.
func TestExtract_Errors(t *testing.T) {
	a := newRecord(t, "A/AAA1", "2020-03-02", "10", "UK-ENG")
	other, err := record.New([]record.Field{
		{Name: "sequence_name", Value: "C/CCC1"},
		{Name: "sample_date", Value: "2020-03-16"},
		{Name: "epi_week", Value: "12"},
		{Name: "adm1", Value: "UK-ENG"},
	})
	require.NoError(t, err)

	tests := []struct {
		msg    string
		recs   []record.Record
		corpus string
		code   gn.ErrorCode
	}{
		{"empty", nil, writeCorpus(t, corpus), errcode.EmptySelectionError},
		{"schema", []record.Record{a, other}, writeCorpus(t, corpus),
			errcode.SchemaMismatchError},
		{"no corpus", []record.Record{a},
			filepath.Join(t.TempDir(), "absent.fasta"), errcode.CorpusReadError},
	}

	for _, v := range tests {
		folder := filepath.Join(t.TempDir(), "out")
		_, err := newExtractor().Extract(v.recs, v.corpus, folder)
		require.Error(t, err, v.msg)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)

		assert.NoDirExists(t, folder, v.msg)
	}
}
