// Package area derives geographic sub-area codes from structured
// sequence names such as "England/MILK-9E05B3/2020".
package area

import (
	"strings"
	"unicode"

	"github.com/gnames/seqsel/pkg/record"
)

// Map keeps sub-area codes per country in order of discovery.
type Map map[record.Country][]string

// labels map the first segment of a sequence name to a country code.
var labels = map[string]record.Country{
	"England":          record.England,
	"Scotland":         record.Scotland,
	"Wales":            record.Wales,
	"Northern_Ireland": record.NorthernIreland,
}

// Classify collects distinct area codes of the records. Scottish codes
// are 3 characters long, others are 4. Codes with digits denote
// non-standard samples and are ignored. Every country is present in the
// result, even without codes.
func Classify(records []record.Record) Map {
	res := make(Map, len(record.Countries))
	seen := make(map[record.Country]map[string]struct{}, len(record.Countries))
	for _, c := range record.Countries {
		res[c] = []string{}
		seen[c] = make(map[string]struct{})
	}

	for _, r := range records {
		country, code, ok := Code(r.SequenceName)
		if !ok {
			continue
		}
		if _, ok := seen[country][code]; ok {
			continue
		}
		seen[country][code] = struct{}{}
		res[country] = append(res[country], code)
	}
	return res
}

// Code extracts the country and area code from a sequence name.
// It returns false if the name has no area segment, the country label
// is unknown, or the candidate code is empty or contains a digit.
func Code(sequenceName string) (record.Country, string, bool) {
	parts := strings.Split(sequenceName, "/")
	if len(parts) < 2 {
		return "", "", false
	}
	country, ok := labels[parts[0]]
	if !ok {
		return "", "", false
	}

	size := 4
	if country == record.Scotland {
		size = 3
	}
	code := prefix(parts[1], size)
	if code == "" || strings.ContainsFunc(code, unicode.IsDigit) {
		return "", "", false
	}
	return country, code, true
}

// prefix returns at most n first characters of s.
func prefix(s string, n int) string {
	rs := []rune(s)
	if len(rs) > n {
		rs = rs[:n]
	}
	return string(rs)
}
