/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/seqsel/internal/ioextract"
	"github.com/gnames/seqsel/pkg/config"
	"github.com/spf13/cobra"
)

// getSelectCmd returns the select command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSelectCmd() *cobra.Command {
	var (
		ff        filterFlags
		corpus    string
		outDir    string
		lineWidth int
		progress  bool
	)

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Select samples by metadata and extract their genomes",
		Long: `Select samples from a metadata table and extract their genomes.

This command:
  1. Reads the metadata CSV file
  2. Keeps records matching all given criteria
     (country, start/end date, epidemiological weeks)
  3. Scans the FASTA corpus once and keeps matching sequences
  4. Writes into the output folder:
     - metadata.csv with selected records
     - sequences.txt, a tab-delimited list of extracted genomes
     - genomes/<sequence_name>.fasta for every found sequence

Sequence names have '/' replaced by '_' in file names.
Criteria can be given by flags or in a YAML file (--criteria),
flags override values from the file.

Examples:
  # England samples of weeks 10 and 12
  seqsel select -m metadata.csv -f cog.fasta -c UK-ENG -w 10,12

  # Date range, results in ./march
  seqsel select -m metadata.csv -f cog.fasta.gz \
    --start-date 2020-03-01 --end-date 2020-03-31 -o march

  # Criteria from a file
  seqsel select -m metadata.csv -f cog.fasta --criteria wales.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSelect(cmd, &ff, corpus, outDir, lineWidth, progress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	ff.register(selectCmd)
	selectCmd.Flags().StringVarP(
		&corpus, "corpus", "f", "",
		"path to FASTA corpus (can be gzipped)",
	)
	selectCmd.Flags().StringVarP(
		&outDir, "out", "o", "",
		"output folder (default from config)",
	)
	selectCmd.Flags().IntVarP(
		&lineWidth, "line-width", "l", 0,
		"residues per line in genome files",
	)
	selectCmd.Flags().BoolVarP(
		&progress, "progress", "p", false,
		"show corpus scanning progress (default from config)",
	)
	_ = selectCmd.MarkFlagRequired("metadata")
	_ = selectCmd.MarkFlagRequired("corpus")

	return selectCmd
}

func runSelect(
	cmd *cobra.Command,
	ff *filterFlags,
	corpus, outDir string,
	lineWidth int,
	progress bool,
) error {
	flags := cmd.Flags()
	selectOpts := []config.Option{
		config.OptExtractMetadataPath(ff.metadata),
		config.OptExtractCorpusPath(corpus),
	}
	if flags.Changed("out") {
		selectOpts = append(selectOpts, config.OptExtractOutputDir(outDir))
	}
	if flags.Changed("line-width") {
		selectOpts = append(selectOpts, config.OptExtractLineWidth(lineWidth))
	}
	if flags.Changed("progress") {
		selectOpts = append(
			selectOpts,
			config.OptExtractWithProgress(progress),
		)
	}
	cfg.Update(selectOpts)

	recs, err := ff.selectRecords(cmd, cfg.Extract.MetadataPath)
	if err != nil {
		return err
	}

	gn.Info("Scanning corpus <em>%s</em>", cfg.Extract.CorpusPath)
	ext := ioextract.New(cfg)
	sum, err := ext.Extract(
		recs, cfg.Extract.CorpusPath, cfg.Extract.OutputDir,
	)
	if err != nil {
		return err
	}

	ioextract.Report(sum)
	return nil
}
