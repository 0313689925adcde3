// Package iocriteria reads filter criteria from YAML files.
//
// Example:
//
//	country: UK-ENG
//	start_date: 2020-03-01
//	end_date: 2020-04-30
//	epi_week: [10, 12]
package iocriteria

import (
	"errors"
	"io"
	"os"

	"github.com/gnames/seqsel/pkg/filter"
	"gopkg.in/yaml.v3"
)

// criteria keeps raw values of a criteria file. EpiWeek is validated
// by filter.ParseEpiWeeks.
type criteria struct {
	Country   string `yaml:"country"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Area      string `yaml:"area"`
	EpiWeek   any    `yaml:"epi_week"`
	Lineage   string `yaml:"lineage"`
}

// Load reads criteria from a YAML file.
func Load(path string) (filter.Criteria, error) {
	f, err := os.Open(path)
	if err != nil {
		return filter.Criteria{}, CriteriaReadError(path, err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode reads criteria from r. The name is used in error messages.
// Unknown keys are rejected.
func Decode(r io.Reader, name string) (filter.Criteria, error) {
	var raw criteria
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return filter.Criteria{}, CriteriaReadError(name, err)
	}

	weeks, err := filter.ParseEpiWeeks(raw.EpiWeek)
	if err != nil {
		return filter.Criteria{}, err
	}

	res := filter.Criteria{
		Country:   raw.Country,
		StartDate: filter.ParseDate(raw.StartDate),
		EndDate:   filter.ParseDate(raw.EndDate),
		Area:      raw.Area,
		EpiWeek:   weeks,
		Lineage:   raw.Lineage,
	}
	return res, nil
}
