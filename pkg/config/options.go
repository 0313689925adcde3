package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptExtractMetadataPath sets the location of the metadata CSV file.
// Runtime-only field - not in ToOptions().
func OptExtractMetadataPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metadata Path", s) {
			c.Extract.MetadataPath = s
		}
	}
}

// OptExtractCorpusPath sets the location of the FASTA corpus.
// Runtime-only field - not in ToOptions().
func OptExtractCorpusPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Corpus Path", s) {
			c.Extract.CorpusPath = s
		}
	}
}

// OptExtractOutputDir sets the destination folder of extraction.
// Runtime-only field - not in ToOptions().
func OptExtractOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Extract.OutputDir = s
		}
	}
}

// OptExtractLineWidth sets the number of residues per FASTA line.
func OptExtractLineWidth(i int) Option {
	return func(c *Config) {
		if isValidInt("Line Width", i) {
			c.Extract.LineWidth = i
		}
	}
}

// OptExtractWithProgress toggles the corpus scan progress bar.
func OptExtractWithProgress(b bool) Option {
	return func(c *Config) {
		c.Extract.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
