package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/seqsel/pkg/area"
	"github.com/gnames/seqsel/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestGetAreasCmd_Exists verifies getAreasCmd returns
// a valid command.
func TestGetAreasCmd_Exists(t *testing.T) {
	cmd := getAreasCmd()
	require.NotNil(t, cmd, "Areas command should exist")
	assert.Equal(t, "areas", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("metadata"),
		"--metadata flag should exist")
	assert.NotNil(t, cmd.Flags().Lookup("epi-week"),
		"--epi-week flag should exist")
}

// TestAreasDoc verifies countries keep their order and codes are
// printed as flow lists.
func TestAreasDoc(t *testing.T) {
	m := area.Map{
		record.England:  {"MILK", "QEUH"},
		record.Scotland: {"EDB"},
	}

	out, err := yaml.Marshal(areasDoc(m))
	require.NoError(t, err)

	exp := "UK-ENG: [MILK, QEUH]\n" +
		"UK-WLS: []\n" +
		"UK-NIR: []\n" +
		"UK-SCT: [EDB]\n"
	assert.Equal(t, exp, string(out))
}

// TestAreas_Run verifies area codes of selected records.
func TestAreas_Run(t *testing.T) {
	meta := writeTestFile(t, t.TempDir(), "metadata.csv", testMetadata)

	cmd := getAreasCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-m", meta, "-w", "11,12,13"})

	err := cmd.Execute()
	require.NoError(t, err)

	var res map[string][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, []string{"QEUH", "MILK"}, res["UK-ENG"])
	assert.Equal(t, []string{"EDB"}, res["UK-SCT"])
	assert.Equal(t, []string{"PHWC"}, res["UK-WLS"])
	assert.Empty(t, res["UK-NIR"])
}
