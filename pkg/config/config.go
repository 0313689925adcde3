// Package config provides configuration management for seqsel.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Extract: line_width, with_progress
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Extract.MetadataPath, CorpusPath, OutputDir
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use SEQSEL_ prefix with underscores for nesting:
//
//	SEQSEL_EXTRACT_LINE_WIDTH=60
//	SEQSEL_EXTRACT_WITH_PROGRESS=true
//	SEQSEL_LOG_LEVEL=info
package config

// Config represents the complete seqsel configuration.
type Config struct {
	// Extract contains settings for sequence extraction.
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ExtractConfig contains settings of the select command.
type ExtractConfig struct {
	// MetadataPath is the location of the metadata CSV file.
	MetadataPath string `mapstructure:"metadata_path" yaml:"metadata_path"`

	// CorpusPath is the location of a multi-record FASTA file
	// (optionally gzipped) to extract sequences from.
	CorpusPath string `mapstructure:"corpus_path" yaml:"corpus_path"`

	// OutputDir is the destination folder for metadata.csv,
	// sequences.txt and genomes/.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// LineWidth is the number of residues per line in generated
	// FASTA files.
	LineWidth int `mapstructure:"line_width" yaml:"line_width"`

	// WithProgress shows a progress bar while the corpus is scanned.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Extract: ExtractConfig{
			OutputDir: "seqsel-output",
			LineWidth: 60,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
