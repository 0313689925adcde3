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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/seqsel/internal/iomanifest"
	"github.com/spf13/cobra"
)

// getManifestCmd returns the manifest command.
func getManifestCmd() *cobra.Command {
	manifestCmd := &cobra.Command{
		Use:   "manifest <sequences.txt>",
		Short: "Check genome files listed in a manifest",
		Long: `Read sequences.txt created by the select command and check
that every listed genome file exists.

Names of sequences with missing files are printed to STDOUT.

Examples:
  seqsel manifest seqsel-output/sequences.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runManifest(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return manifestCmd
}

func runManifest(cmd *cobra.Command, path string) error {
	rows, err := iomanifest.Read(path)
	if err != nil {
		return err
	}

	missing := iomanifest.Check(rows)
	gn.Info("Manifest lists <em>%s</em> sequences",
		humanize.Comma(int64(len(rows))))
	if len(missing) == 0 {
		gn.Info("All genome files are in place")
		return nil
	}

	gn.Warn("<em>%s</em> genome files are missing",
		humanize.Comma(int64(len(missing))))
	out := cmd.OutOrStdout()
	for _, v := range missing {
		fmt.Fprintln(out, v)
	}
	return nil
}
