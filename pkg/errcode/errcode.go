package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Metadata errors
	MetadataReadError
	RecordParseError

	// Filter errors
	FilterDateRangeError
	FilterEpiWeekError
	CriteriaReadError

	// Extract errors
	EmptySelectionError
	SchemaMismatchError
	CorpusReadError

	// Manifest errors
	ManifestReadError
)
