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
	"github.com/gnames/seqsel/pkg/area"
	"github.com/gnames/seqsel/pkg/record"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getAreasCmd returns the areas command.
func getAreasCmd() *cobra.Command {
	var ff filterFlags

	areasCmd := &cobra.Command{
		Use:   "areas",
		Short: "List sub-area codes of selected samples",
		Long: `List sub-area codes of samples selected from a metadata table.

Area codes are taken from sequence names like
"England/MILK-9E05B3/2020": the first 4 characters after the country
label (3 for Scotland). Codes with digits are ignored.

The result is printed as YAML, one list of codes per country.

Examples:
  seqsel areas -m metadata.csv
  seqsel areas -m metadata.csv -c UK-SCT -w 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAreas(cmd, &ff)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	ff.register(areasCmd)
	_ = areasCmd.MarkFlagRequired("metadata")

	return areasCmd
}

func runAreas(cmd *cobra.Command, ff *filterFlags) error {
	recs, err := ff.selectRecords(cmd, ff.metadata)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(areasDoc(area.Classify(recs)))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// areasDoc keeps countries in a fixed order for printing.
func areasDoc(m area.Map) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range record.Countries {
		codes := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range m[c] {
			codes.Content = append(codes.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.String()},
			codes,
		)
	}
	return doc
}
