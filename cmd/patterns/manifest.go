package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// suiteEntry selects one demo inside a suite, optionally repeated.
type suiteEntry struct {
	Name   string `yaml:"name"`
	Repeat int    `yaml:"repeat"`
}

// suiteManifest is the YAML schema for -suite files.
type suiteManifest struct {
	// Level optionally overrides the log level for the whole run.
	Level string `yaml:"level"`

	Demos []suiteEntry `yaml:"demos"`
}

// loadSuite reads and validates a suite manifest.
//
// Validation is deliberately strict: an empty suite or a nameless entry is a
// manifest bug, not something to run around. Repeat defaults to 1.
func loadSuite(path string) (suiteManifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return suiteManifest{}, fmt.Errorf("read suite %s: %w", path, err)
	}

	var suite suiteManifest
	if err := yaml.Unmarshal(raw, &suite); err != nil {
		return suiteManifest{}, fmt.Errorf("parse suite %s: %w", path, err)
	}

	if len(suite.Demos) == 0 {
		return suiteManifest{}, fmt.Errorf("suite %s selects no demos", path)
	}
	for i := range suite.Demos {
		entry := &suite.Demos[i]
		if entry.Name == "" {
			return suiteManifest{}, fmt.Errorf("suite %s: entry %d has no name", path, i)
		}
		if entry.Repeat < 0 {
			return suiteManifest{}, fmt.Errorf("suite %s: entry %q has negative repeat", path, entry.Name)
		}
		if entry.Repeat == 0 {
			entry.Repeat = 1
		}
	}

	return suite, nil
}
