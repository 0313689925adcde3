package seqsel

import (
	"time"

	"github.com/gnames/seqsel/pkg/record"
)

// MetadataLoader reads metadata records from a comma-delimited table.
type MetadataLoader interface {
	// Load returns records in the order of the table rows.
	// A row with unparseable sample_date or epi_week fails the load.
	Load(path string) ([]record.Record, error)
}

// Extractor copies sequences of selected records out of a FASTA corpus.
type Extractor interface {
	// Extract scans the corpus at corpusPath once and writes
	// metadata.csv, sequences.txt and genomes/<name>.fasta into folder.
	// It fails before writing anything if records are empty, their
	// schemas differ, or the corpus cannot be read.
	Extract(
		records []record.Record,
		corpusPath, folder string,
	) (*Summary, error)
}

// Summary describes the outcome of an extraction.
type Summary struct {
	// SelectionID is a UUID v5 derived from the selected sequence
	// names. Extractions of the same selection share it.
	SelectionID string
	// Selected is the number of records given to the extractor.
	Selected int
	// Scanned is the number of corpus records read.
	Scanned int
	// Extracted is the number of genome files written.
	Extracted int
	// Missing lists selected sequence names absent from the corpus,
	// in the order of the selection.
	Missing []string
	// Duplicates counts corpus records skipped because their
	// identifier was already extracted.
	Duplicates int
	// Collisions lists identifiers skipped because another identifier
	// has the same file name after '/' is replaced by '_'.
	Collisions []string
	// Folder is the absolute path of the destination folder.
	Folder string
	// Duration of the extraction.
	Duration time.Duration
}
