package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMetadata = `sequence_name,country,adm1,sample_date,epi_week,lineage
England/MILK-9E05B3/2020,UK,UK-ENG,2020-03-02,10,B.1
Scotland/EDB123/2020,UK,UK-SCT,2020-03-09,11,B.1.1
England/QEUH-13ADEF/2020,UK,UK-ENG,2020-03-16,12,B.1
England/MILK-AB12CD/2020,UK,UK-ENG,2020-03-17,12,B.1
Wales/PHWC-26B2E/2020,UK,UK-WLS,2020-03-23,13,B.2
`

const testCorpus = `>England/MILK-9E05B3/2020
ACGTACGT
>Scotland/EDB123/2020
GGGGCCCC
>England/QEUH-13ADEF/2020
TTTTAAAA
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
