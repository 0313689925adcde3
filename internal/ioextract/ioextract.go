// Package ioextract copies sequences of selected records out of a
// FASTA corpus into a destination folder.
package ioextract

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/gnames/seqsel/internal/iocorpus"
	"github.com/gnames/seqsel/internal/iofs"
	"github.com/gnames/seqsel/internal/iomanifest"
	"github.com/gnames/seqsel/internal/iometa"
	"github.com/gnames/seqsel/pkg/config"
	"github.com/gnames/seqsel/pkg/manifest"
	"github.com/gnames/seqsel/pkg/record"
	"github.com/gnames/seqsel/pkg/seqsel"
)

const (
	// MetadataFile is the name of the regenerated metadata table.
	MetadataFile = "metadata.csv"
	// ManifestFile is the name of the tab-delimited sequence list.
	ManifestFile = "sequences.txt"
)

type ioextract struct {
	cfg      *config.Config
	progress io.Writer
}

// New creates an Extractor. A progress bar goes to STDERR if
// cfg.Extract.WithProgress is true.
func New(cfg *config.Config) seqsel.Extractor {
	res := &ioextract{cfg: cfg}
	if cfg.Extract.WithProgress {
		res.progress = os.Stderr
	}
	return res
}

// Extract implements seqsel.Extractor.
func (e *ioextract) Extract(
	records []record.Record,
	corpusPath, folder string,
) (*seqsel.Summary, error) {
	start := time.Now()

	if len(records) == 0 {
		return nil, EmptySelectionError()
	}
	for i := 1; i < len(records); i++ {
		if !records[0].SameSchema(records[i]) {
			return nil, SchemaMismatchError(i, records[i].SequenceName)
		}
	}

	targets := make(map[string]struct{}, len(records))
	names := make([]string, len(records))
	for i, v := range records {
		targets[v.SequenceName] = struct{}{}
		names[i] = v.SequenceName
	}

	res := &seqsel.Summary{
		SelectionID: gnuuid.New(strings.Join(names, "\n")).String(),
		Selected:    len(records),
	}

	seqs, err := e.scan(corpusPath, targets, res)
	if err != nil {
		return nil, err
	}

	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return nil, iofs.CreateDirError(folder, err)
	}
	res.Folder = absFolder

	genomes, err := iofs.EnsureOutputDirs(absFolder)
	if err != nil {
		return nil, err
	}

	err = iometa.WriteFile(filepath.Join(absFolder, MetadataFile), records)
	if err != nil {
		return nil, err
	}

	seqs = e.dropCollisions(seqs, res)

	rows := make([]manifest.Row, len(seqs))
	for i, v := range seqs {
		name := manifest.SanitizeName(v.ID)
		rows[i] = manifest.Row{
			SeqName:        name,
			AlnName:        manifest.AlnName(i),
			SeqPath:        filepath.Join(genomes, name+".fasta"),
			AnnotationPath: manifest.NoAnnotation,
		}
	}

	err = iomanifest.Write(filepath.Join(absFolder, ManifestFile), rows)
	if err != nil {
		return nil, err
	}

	for i, v := range seqs {
		if err = e.writeGenome(rows[i].SeqPath, v); err != nil {
			return nil, err
		}
		res.Extracted++
	}

	res.Missing = missing(records, targets)
	res.Duration = time.Since(start)

	slog.Info(
		"Extraction finished",
		"selection_id", res.SelectionID,
		"folder", res.Folder,
		"selected", res.Selected,
		"scanned", res.Scanned,
		"extracted", res.Extracted,
		"missing", len(res.Missing),
		"duplicates", res.Duplicates,
		"collisions", len(res.Collisions),
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

// scan reads the corpus once and keeps sequences whose identifiers are
// in targets, in the corpus order. Found identifiers are removed from
// targets.
func (e *ioextract) scan(
	path string,
	targets map[string]struct{},
	sum *seqsel.Summary,
) ([]*linear.Seq, error) {
	var opts []iocorpus.Option
	if e.progress != nil {
		opts = append(opts, iocorpus.OptProgress(e.progress))
	}

	sc, err := iocorpus.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	found := make(map[string]struct{})
	var res []*linear.Seq
	for sc.Next() {
		id := sc.ID()
		if _, ok := found[id]; ok {
			sum.Duplicates++
			slog.Warn("Duplicate corpus identifier skipped", "id", id)
			continue
		}
		if _, ok := targets[id]; !ok {
			continue
		}
		found[id] = struct{}{}
		delete(targets, id)
		res = append(res, sc.Seq())
	}
	sum.Scanned = sc.Count()
	if err = sc.Err(); err != nil {
		return nil, err
	}

	slog.Info("Corpus scanned",
		"path", path, "records", sum.Scanned, "matched", len(res))
	return res, nil
}

// dropCollisions keeps the first sequence of every file name. Distinct
// identifiers such as "A/B_C" and "A_B/C" share a file name after
// sanitizing, later ones are skipped and counted.
func (e *ioextract) dropCollisions(
	seqs []*linear.Seq,
	sum *seqsel.Summary,
) []*linear.Seq {
	owners := make(map[string]string, len(seqs))
	res := make([]*linear.Seq, 0, len(seqs))
	for _, v := range seqs {
		name := manifest.SanitizeName(v.ID)
		if owner, ok := owners[name]; ok {
			sum.Collisions = append(sum.Collisions, v.ID)
			slog.Warn("Sequence skipped, its file name is taken",
				"id", v.ID, "file_name", name, "taken_by", owner)
			continue
		}
		owners[name] = v.ID
		res = append(res, v)
	}
	return res
}

func (e *ioextract) writeGenome(path string, seq *linear.Seq) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return iofs.WriteFileError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = iofs.WriteFileError(path, cerr)
		}
	}()

	w := fasta.NewWriter(f, e.cfg.Extract.LineWidth)
	if _, err = w.Write(seq); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return nil
}

// missing returns names left in targets in the order of records.
func missing(records []record.Record, targets map[string]struct{}) []string {
	var res []string
	for _, v := range records {
		if _, ok := targets[v.SequenceName]; ok {
			res = append(res, v.SequenceName)
			delete(targets, v.SequenceName)
		}
	}
	return res
}

// Report prints a summary of an extraction for users.
func Report(sum *seqsel.Summary) {
	gn.Info(
		"Extracted <em>%s</em> of <em>%s</em> selected sequences "+
			"from <em>%s</em> corpus records",
		humanize.Comma(int64(sum.Extracted)),
		humanize.Comma(int64(sum.Selected)),
		humanize.Comma(int64(sum.Scanned)),
	)
	if n := len(sum.Missing); n > 0 {
		gn.Warn(
			"<em>%s</em> selected sequences were not found in the corpus",
			humanize.Comma(int64(n)),
		)
		for _, v := range sum.Missing {
			slog.Warn("Sequence not found in corpus", "id", v)
		}
	}
	if sum.Duplicates > 0 {
		gn.Warn(
			"<em>%s</em> duplicate corpus records were skipped",
			humanize.Comma(int64(sum.Duplicates)),
		)
	}
	if n := len(sum.Collisions); n > 0 {
		gn.Warn(
			"<em>%s</em> sequences were skipped because their file names "+
				"were already taken",
			humanize.Comma(int64(n)),
		)
	}
	gn.Info(
		"Output is in <em>%s</em>, elapsed time %s\nSelection ID: %s",
		sum.Folder, gnfmt.TimeString(sum.Duration.Seconds()),
		sum.SelectionID,
	)
}
