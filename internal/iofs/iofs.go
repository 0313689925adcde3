// Package iofs handles directories and files that seqsel creates:
// its own config and log locations and extraction output folders.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/seqsel/pkg/config"
)

// GenomesDir is the subfolder of an output folder with per-sequence
// FASTA files.
const GenomesDir = "genomes"

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureOutputDirs creates an output folder and its genomes subfolder.
// Existing folders are kept as they are.
func EnsureOutputDirs(folder string) (string, error) {
	genomes := filepath.Join(folder, GenomesDir)
	for _, v := range []string{folder, genomes} {
		if err := touchDir(v); err != nil {
			return "", err
		}
	}
	return genomes, nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
