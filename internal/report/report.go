// Package report persists a resolved run configuration as JSON for
// downstream tooling.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/photonforge/rtprep/internal/config"
)

// Report is the serialized form of a resolved configuration, together with
// the document it was resolved from.
type Report struct {
	SchemaVersion int               `json:"schema_version"`
	Input         string            `json:"input"`
	Config        *config.RunConfig `json:"config"`
}

// SchemaVersion is bumped whenever the report layout changes incompatibly.
const SchemaVersion = 1

// Write marshals the resolved configuration as indented JSON at path,
// creating parent directories as needed.
func Write(path, input string, rc *config.RunConfig) error {
	rep := &Report{
		SchemaVersion: SchemaVersion,
		Input:         input,
		Config:        rc,
	}
	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Read loads a previously written report.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	if rep.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("unsupported report schema version %d", rep.SchemaVersion)
	}
	return &rep, nil
}
