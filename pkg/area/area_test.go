package area_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/gnames/seqsel/pkg/area"
	"github.com/gnames/seqsel/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, name string) record.Record {
	t.Helper()
	r, err := record.New([]record.Field{
		{Name: "sequence_name", Value: name},
		{Name: "sample_date", Value: "2020-03-01"},
		{Name: "epi_week", Value: "10"},
		{Name: "adm1", Value: "UK-ENG"},
	})
	require.NoError(t, err)
	return r
}

func TestClassify(t *testing.T) {
	names := []string{
		"England/MILK-9E05B3/2020",
		"England/CAMB-1B2C3D/2020",
		"England/MILK-AAAAAA/2020",
		"England/20136000104/2020",
		"Scotland/EDB1234/2020",
		"Scotland/CVR567/2020",
		"Scotland/EDB999/2020",
		"Wales/PHWC-26B2E/2020",
		"Wales/ALDP-12345/2020",
		"Northern_Ireland/NIRE-00001/2020",
		"Northern_Ireland/QEUH-1234/2020",
	}
	var recs []record.Record
	for _, v := range names {
		recs = append(recs, newRecord(t, v))
	}

	res := area.Classify(recs)

	assert.Equal(t, []string{"MILK", "CAMB"}, res[record.England])
	assert.Equal(t, []string{"EDB", "CVR"}, res[record.Scotland])
	assert.Equal(t, []string{"PHWC", "ALDP"}, res[record.Wales])
	assert.Equal(t, []string{"NIRE", "QEUH"}, res[record.NorthernIreland])
}

// TestClassify_AllCountriesPresent verifies every country key exists
// even without records.
func TestClassify_AllCountriesPresent(t *testing.T) {
	res := area.Classify(nil)
	require.Len(t, res, 4)
	for _, c := range record.Countries {
		codes, ok := res[c]
		assert.True(t, ok, c)
		assert.Empty(t, codes, c)
	}
}

// TestClassify_NoDigits verifies no returned code contains a digit.
func TestClassify_NoDigits(t *testing.T) {
	names := []string{
		"England/1ABC/2020", "England/A1BC-X/2020", "England/ABC1/2020",
		"England/ABCD1/2020", "Scotland/AB1/2020", "Scotland/ABC1/2020",
		"Wales/W4LE/2020", "Northern_Ireland/N1RE/2020",
	}
	var recs []record.Record
	for _, v := range names {
		recs = append(recs, newRecord(t, v))
	}

	res := area.Classify(recs)
	for c, codes := range res {
		for _, code := range codes {
			assert.False(t, strings.ContainsFunc(code, unicode.IsDigit),
				"%s: %s", c, code)
		}
	}
	assert.Equal(t, []string{"ABCD"}, res[record.England])
	assert.Equal(t, []string{"ABC"}, res[record.Scotland])
}

func TestCode(t *testing.T) {
	tests := []struct {
		msg     string
		name    string
		country record.Country
		code    string
		ok      bool
	}{
		{msg: "england", name: "England/MILK-9E05B3/2020",
			country: record.England, code: "MILK", ok: true},
		{msg: "scotland", name: "Scotland/EDB1234/2020",
			country: record.Scotland, code: "EDB", ok: true},
		{msg: "short segment", name: "Wales/AB/2020",
			country: record.Wales, code: "AB", ok: true},
		{msg: "digit", name: "England/QE1H-ABCDEF/2020"},
		{msg: "unknown country", name: "France/PARI-1/2020"},
		{msg: "no area", name: "England"},
		{msg: "empty area", name: "England//2020"},
	}

	for _, v := range tests {
		country, code, ok := area.Code(v.name)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.country, country, v.msg)
		assert.Equal(t, v.code, code, v.msg)
	}
}
