package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.webassert/pkg/suite"
)

// bankFile is the on-disk structure for a suite definition
// bank. YAML files reuse the same field names in snake_case.
type bankFile struct {
	Version string             `json:"version" yaml:"version"`
	Suites  []suite.Definition `json:"suites" yaml:"suites"`
}

// LoadDefinitionsFromFile reads a JSON or YAML file containing
// a bank of suite definitions and registers each one into the
// given registry. The format is chosen by file extension.
func LoadDefinitionsFromFile(
	reg Registry,
	path string,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(
			"failed to read definitions file %s: %w",
			path, err,
		)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return loadDefinitionsFromBytes(reg, data, path, ext)
}

// LoadDefinitionsFromDir loads all .json and .yaml/.yml
// definition bank files from a directory. It does not recurse
// into subdirectories.
func LoadDefinitionsFromDir(
	reg Registry,
	dir string,
) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		if err := LoadDefinitionsFromFile(reg, p); err != nil {
			return fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}
	}

	return nil
}

// loadDefinitionsFromBytes unmarshals a bank file and
// registers its definitions.
func loadDefinitionsFromBytes(
	reg Registry,
	data []byte,
	source, ext string,
) error {
	var bank bankFile

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &bank); err != nil {
			return fmt.Errorf(
				"failed to parse definitions from %s: %w",
				source, err,
			)
		}
	default:
		if err := json.Unmarshal(data, &bank); err != nil {
			return fmt.Errorf(
				"failed to parse definitions from %s: %w",
				source, err,
			)
		}
	}

	for i := range bank.Suites {
		def := &bank.Suites[i]
		if err := reg.Register(def); err != nil {
			return fmt.Errorf(
				"definition %s from %s: %w",
				def.ID, source, err,
			)
		}
	}

	return nil
}
