package evaluation

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/talentsift/talentsift/internal/recommend"
)

type recommenderStub struct {
	recs []recommend.Recommendation
}

func (s *recommenderStub) Recommend(_ context.Context, _ string) ([]recommend.Recommendation, error) {
	return s.recs, nil
}

func recsWithURLs(urls ...string) []recommend.Recommendation {
	recs := make([]recommend.Recommendation, len(urls))
	for i, u := range urls {
		recs[i] = recommend.Recommendation{Name: "A", URL: u}
	}
	return recs
}

func writeTestSet(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.json")
	if err := os.WriteFile(path, []byte(`[{"query":"q1"}]`), 0o644); err != nil {
		t.Fatalf("write test set: %v", err)
	}
	return path
}

func TestWritePredictions(t *testing.T) {
	dir := t.TempDir()
	testPath := writeTestSet(t, dir)
	outPath := filepath.Join(dir, "out.csv")

	// Duplicates and empty urls are dropped before the 5-10 check.
	stub := &recommenderStub{recs: recsWithURLs(
		"https://example.com/1",
		"https://example.com/2",
		"https://example.com/2",
		"",
		"https://example.com/3",
		"https://example.com/4",
		"https://example.com/5",
	)}

	if err := WritePredictions(context.Background(), stub, testPath, outPath); err != nil {
		t.Fatalf("write predictions: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected header + 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "Query" || rows[0][1] != "Assessment_url" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "q1" || rows[1][1] != "https://example.com/1" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestWritePredictionsEnforcesBounds(t *testing.T) {
	dir := t.TempDir()
	testPath := writeTestSet(t, dir)
	outPath := filepath.Join(dir, "out.csv")

	short := &recommenderStub{recs: recsWithURLs("https://example.com/1", "https://example.com/2")}
	if err := WritePredictions(context.Background(), short, testPath, outPath); err == nil {
		t.Fatalf("expected error for fewer than 5 unique urls")
	}

	var many []string
	for i := 0; i < 11; i++ {
		many = append(many, fmt.Sprintf("https://example.com/%d", i))
	}
	long := &recommenderStub{recs: recsWithURLs(many...)}
	if err := WritePredictions(context.Background(), long, testPath, outPath); err == nil {
		t.Fatalf("expected error for more than 10 urls")
	}
}
