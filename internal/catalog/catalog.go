// Package catalog loads the assessment catalog and prepares the documents
// that get indexed into the vector store.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SolutionTypeIndividual marks a single-assessment product. Only these are
// recommended; bundled packages are filtered out of the candidate pool.
const SolutionTypeIndividual = "individual"

// Record is a single catalog entry. Duration is kept as raw JSON because the
// source data mixes free text ("49 minutes") and bare numbers; persisting the
// catalog must not rewrite values it did not touch.
type Record struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	URL                  string          `json:"url"`
	TestTypes            []string        `json:"test_types"`
	Duration             json.RawMessage `json:"duration,omitempty"`
	RemoteTestingSupport string          `json:"remote_testing_support,omitempty"`
	AdaptiveIRTSupport   string          `json:"adaptive_irt_support,omitempty"`
	SolutionType         string          `json:"solution_type,omitempty"`
}

// DurationText returns the duration field as plain text regardless of
// whether the source stored it as a string or a number.
func (r Record) DurationText() string {
	raw := bytes.TrimSpace(r.Duration)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// ContentText renders the record into the text that gets embedded.
func (r Record) ContentText() string {
	return fmt.Sprintf("Name: %s\nDescription: %s\nTest Types: %s\nDuration: %s\nRemote Support: %s\nAdaptive Support: %s",
		r.Name,
		r.Description,
		strings.Join(r.TestTypes, ", "),
		r.DurationText(),
		r.RemoteTestingSupport,
		r.AdaptiveIRTSupport,
	)
}

// Document pairs the embedded content with its source record. Produced 1:1
// from records at load time.
type Document struct {
	Content string
	Record  Record
}

// Load reads the catalog file, backfills a missing solution_type with
// "individual" and persists the catalog back when anything changed. A second
// load of an already-migrated catalog performs no write. A missing or
// malformed catalog is a startup failure, not a per-request error.
func Load(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	dirty := false
	for i := range records {
		if strings.TrimSpace(records[i].SolutionType) == "" {
			records[i].SolutionType = SolutionTypeIndividual
			dirty = true
		}
	}

	if dirty {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling catalog: %w", err)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return nil, fmt.Errorf("persisting catalog %s: %w", path, err)
		}
	}

	docs := make([]Document, len(records))
	for i, rec := range records {
		docs[i] = Document{Content: rec.ContentText(), Record: rec}
	}
	return docs, nil
}
