package evaluation

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/talentsift/talentsift/internal/recommend"
)

// Recommender is the full-pipeline interface used for prediction generation.
type Recommender interface {
	Recommend(ctx context.Context, jobDescription string) ([]recommend.Recommendation, error)
}

// WritePredictions runs the full pipeline over the unlabeled test set and
// writes one Query,Assessment_url row per recommended url. Each query must
// yield 5-10 unique urls; anything else fails loudly rather than producing
// a submission that silently violates the expected shape.
func WritePredictions(ctx context.Context, r Recommender, testPath, outPath string) error {
	data, err := os.ReadFile(testPath)
	if err != nil {
		return fmt.Errorf("reading test set %s: %w", testPath, err)
	}
	var items []TestItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parsing test set %s: %w", testPath, err)
	}

	var rows [][]string
	for _, item := range items {
		recs, err := r.Recommend(ctx, item.Query)
		if err != nil {
			return fmt.Errorf("recommending for query %q: %w", item.Query, err)
		}

		seen := make(map[string]bool)
		var urls []string
		for _, rec := range recs {
			u := strings.TrimSpace(rec.URL)
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			urls = append(urls, u)
		}

		if len(urls) < 5 {
			return fmt.Errorf("less than 5 unique recommendations for query %q (found %d)", item.Query, len(urls))
		}
		if len(urls) > 10 {
			return fmt.Errorf("more than 10 recommendations for query %q (found %d)", item.Query, len(urls))
		}

		for _, u := range urls {
			rows = append(rows, []string{item.Query, u})
		}
	}

	if len(rows) == 0 {
		return fmt.Errorf("no prediction rows to write")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Query", "Assessment_url"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	w.Flush()
	return w.Error()
}
