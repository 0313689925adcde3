// Package manifest describes sequences.txt, the tab-delimited list of
// extracted sequences consumed by alignment and graph tools.
package manifest

import (
	"strconv"
	"strings"
)

// NoAnnotation is the annotation_path of sequences without annotation.
const NoAnnotation = "NA"

// Header is the fixed header of sequences.txt.
var Header = []string{"seq_name", "aln_name", "seq_path", "annotation_path"}

// Row is one extracted sequence.
type Row struct {
	// SeqName is the sequence identifier with '/' replaced by '_'.
	SeqName string
	// AlnName is the alias of the sequence in an alignment ("seq0", ...).
	AlnName string
	// SeqPath is the absolute path to the sequence FASTA file.
	SeqPath string
	// AnnotationPath is the path to annotations or NoAnnotation.
	AnnotationPath string
}

// SanitizeName makes a sequence identifier usable as a file name.
func SanitizeName(id string) string {
	return strings.ReplaceAll(id, "/", "_")
}

// AlnName returns the alignment alias of the i-th (zero-based)
// extracted sequence.
func AlnName(i int) string {
	return "seq" + strconv.Itoa(i)
}

// Strings returns values of the row in the header order.
func (r Row) Strings() []string {
	return []string{r.SeqName, r.AlnName, r.SeqPath, r.AnnotationPath}
}
