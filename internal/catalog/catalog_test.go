package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assessments.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadBackfillsSolutionType(t *testing.T) {
	path := writeCatalog(t, `[
		{"name":"Java Test","description":"Java skills","url":"https://example.com/java","test_types":["Knowledge"],"duration":"49 minutes","remote_testing_support":"Yes","adaptive_irt_support":"No"},
		{"name":"Bundle","description":"Pack","url":"https://example.com/bundle","test_types":["Ability"],"solution_type":"package"}
	]`)

	docs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Record.SolutionType != SolutionTypeIndividual {
		t.Fatalf("expected backfilled solution_type, got %q", docs[0].Record.SolutionType)
	}
	if docs[1].Record.SolutionType != "package" {
		t.Fatalf("existing solution_type must be preserved, got %q", docs[1].Record.SolutionType)
	}

	// The backfill must have been persisted.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var persisted []Record
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("parse persisted: %v", err)
	}
	if persisted[0].SolutionType != SolutionTypeIndividual {
		t.Fatalf("persisted catalog missing backfill: %q", persisted[0].SolutionType)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	path := writeCatalog(t, `[
		{"name":"A","description":"d","url":"https://example.com/a","test_types":["Ability"]}
	]`)

	if _, err := Load(path); err != nil {
		t.Fatalf("first load: %v", err)
	}
	migrated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read migrated: %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Fatalf("second load: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after second load: %v", err)
	}
	if string(migrated) != string(after) {
		t.Fatalf("second load rewrote an already-migrated catalog")
	}
}

func TestLoadFailsOnMissingOrMalformed(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
	path := writeCatalog(t, `{"not":"an array"}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed catalog")
	}
}

func TestContentText(t *testing.T) {
	rec := Record{
		Name:                 "Java Test",
		Description:          "Java skills",
		TestTypes:            []string{"Knowledge", "Ability"},
		Duration:             json.RawMessage(`"49 minutes"`),
		RemoteTestingSupport: "Yes",
		AdaptiveIRTSupport:   "No",
	}
	content := rec.ContentText()
	for _, want := range []string{
		"Name: Java Test",
		"Test Types: Knowledge, Ability",
		"Duration: 49 minutes",
		"Remote Support: Yes",
		"Adaptive Support: No",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("content missing %q:\n%s", want, content)
		}
	}
}

func TestDurationText(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"49 minutes"`, "49 minutes"},
		{`30`, "30"},
		{``, ""},
		{`null`, ""},
	}
	for _, tc := range cases {
		rec := Record{Duration: json.RawMessage(tc.raw)}
		if got := rec.DurationText(); got != tc.want {
			t.Fatalf("DurationText(%s) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
