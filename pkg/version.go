// Package seqsel selects genomic sequences by metadata criteria and
// extracts them from a FASTA corpus for downstream alignment.
package seqsel

var (
	// Version of seqsel, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
