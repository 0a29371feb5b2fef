package recommend

import (
	"testing"

	"github.com/talentsift/talentsift/internal/catalog"
)

func doc(name, solutionType string) catalog.Document {
	return catalog.Document{Record: catalog.Record{Name: name, SolutionType: solutionType}}
}

func TestFilterCandidatesKeepsIndividual(t *testing.T) {
	docs := []catalog.Document{
		doc("a", "individual"),
		doc("b", "package"),
		doc("c", ""), // absence counts as individual
	}
	filtered := filterCandidates(docs)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(filtered))
	}
	if filtered[0].Record.Name != "a" || filtered[1].Record.Name != "c" {
		t.Fatalf("unexpected order: %v, %v", filtered[0].Record.Name, filtered[1].Record.Name)
	}
}

func TestFilterCandidatesFallsBackWhenEmpty(t *testing.T) {
	docs := []catalog.Document{doc("a", "package"), doc("b", "bundle")}
	filtered := filterCandidates(docs)
	if len(filtered) != 2 {
		t.Fatalf("expected unfiltered fallback, got %d candidates", len(filtered))
	}
}

func TestFilterCandidatesEmptyInput(t *testing.T) {
	if got := filterCandidates(nil); len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %d", len(got))
	}
}
