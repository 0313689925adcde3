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
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/seqsel/internal/iocriteria"
	"github.com/gnames/seqsel/internal/iometa"
	seqsel "github.com/gnames/seqsel/pkg"
	"github.com/gnames/seqsel/pkg/filter"
	"github.com/gnames/seqsel/pkg/record"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", seqsel.Version, seqsel.Build)
		os.Exit(0)
	}
}

// filterFlags keep filter criteria given on the command line.
type filterFlags struct {
	metadata     string
	criteriaFile string
	country      string
	startDate    string
	endDate      string
	epiWeeks     []int
	area         string
	lineage      string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&f.metadata, "metadata", "m", "",
		"path to metadata CSV file",
	)
	cmd.Flags().StringVar(
		&f.criteriaFile, "criteria", "",
		"YAML file with filter criteria, flags override its values",
	)
	cmd.Flags().StringVarP(
		&f.country, "country", "c", "",
		"country code (UK-ENG, UK-WLS, UK-NIR, UK-SCT)",
	)
	cmd.Flags().StringVar(
		&f.startDate, "start-date", "",
		"earliest sample date YYYY-MM-DD (inclusive)",
	)
	cmd.Flags().StringVar(
		&f.endDate, "end-date", "",
		"latest sample date YYYY-MM-DD (inclusive)",
	)
	cmd.Flags().IntSliceVarP(
		&f.epiWeeks, "epi-week", "w", []int{},
		"epidemiological weeks, for example 10,12",
	)
	cmd.Flags().StringVar(
		&f.area, "area", "",
		"sub-area code (not applied yet)",
	)
	cmd.Flags().StringVar(
		&f.lineage, "lineage", "",
		"lineage (not applied yet)",
	)
}

// criteria combines the criteria file with explicitly set flags.
func (f *filterFlags) criteria(cmd *cobra.Command) (filter.Criteria, error) {
	var res filter.Criteria
	var err error
	if f.criteriaFile != "" {
		if res, err = iocriteria.Load(f.criteriaFile); err != nil {
			return res, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("country") {
		res.Country = f.country
	}
	if flags.Changed("start-date") {
		res.StartDate = filter.ParseDate(f.startDate)
	}
	if flags.Changed("end-date") {
		res.EndDate = filter.ParseDate(f.endDate)
	}
	if flags.Changed("epi-week") {
		if len(f.epiWeeks) == 1 {
			res.EpiWeek = filter.Week(f.epiWeeks[0])
		} else {
			res.EpiWeek = filter.Weeks(f.epiWeeks...)
		}
	}
	if flags.Changed("area") {
		res.Area = f.area
	}
	if flags.Changed("lineage") {
		res.Lineage = f.lineage
	}
	return res, nil
}

// selectRecords loads metadata and applies filter criteria to it.
func (f *filterFlags) selectRecords(
	cmd *cobra.Command,
	metadataPath string,
) ([]record.Record, error) {
	crit, err := f.criteria(cmd)
	if err != nil {
		return nil, err
	}

	recs, err := iometa.New().Load(metadataPath)
	if err != nil {
		return nil, err
	}

	for _, w := range crit.Warnings() {
		gn.Warn("Criterion <em>%s</em> (%s) is skipped: %s",
			w.Criterion, w.Value, w.Message)
	}

	res, err := filter.New(slog.Default()).Apply(recs, crit)
	if err != nil {
		return nil, err
	}

	gn.Info("Selected <em>%s</em> of <em>%s</em> records",
		humanize.Comma(int64(len(res))), humanize.Comma(int64(len(recs))))
	return res, nil
}
