// Package evaluation holds the offline quality tooling: Recall@K over a
// labeled train set (pure retrieval, no LLM) and prediction CSV generation
// over an unlabeled test set (full pipeline).
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/talentsift/talentsift/internal/recommend"
)

// TrainItem is one labeled query from train.json.
type TrainItem struct {
	Query        string   `json:"query"`
	RelevantURLs []string `json:"relevant_urls"`
}

// TestItem is one unlabeled query from test.json.
type TestItem struct {
	Query string `json:"query"`
}

// RawRecommender is the retrieval-only interface used for evaluation, so
// recall measures the vector index and not the reranker.
type RawRecommender interface {
	RecommendRaw(ctx context.Context, jobDescription string, k int) ([]recommend.RawResult, error)
}

// NormalizeURLs normalizes every url for fair comparison against labels.
func NormalizeURLs(urls []string) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = recommend.NormalizeURL(u)
	}
	return out
}

// RecallAtK is the fraction of relevant urls found in the top-k predictions.
func RecallAtK(predicted, relevant []string, k int) float64 {
	if len(relevant) == 0 {
		return 0
	}
	topK := predicted
	if len(topK) > k {
		topK = topK[:k]
	}
	predictedSet := make(map[string]bool, len(topK))
	for _, u := range topK {
		predictedSet[u] = true
	}
	hits := 0
	seen := make(map[string]bool, len(relevant))
	for _, u := range relevant {
		if seen[u] {
			continue
		}
		seen[u] = true
		if predictedSet[u] {
			hits++
		}
	}
	return float64(hits) / float64(len(relevant))
}

// Evaluate computes mean Recall@K over the labeled train set.
func Evaluate(ctx context.Context, r RawRecommender, trainPath string, k int, logger *log.Logger) (float64, error) {
	if logger == nil {
		logger = log.New(log.Writer(), "[EVAL] ", log.LstdFlags)
	}

	data, err := os.ReadFile(trainPath)
	if err != nil {
		return 0, fmt.Errorf("reading train set %s: %w", trainPath, err)
	}
	var items []TrainItem
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, fmt.Errorf("parsing train set %s: %w", trainPath, err)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("train set %s contains no queries", trainPath)
	}

	var sum float64
	for _, item := range items {
		results, err := r.RecommendRaw(ctx, item.Query, k)
		if err != nil {
			return 0, fmt.Errorf("retrieving for query %q: %w", item.Query, err)
		}
		predicted := make([]string, len(results))
		for i, res := range results {
			predicted[i] = res.URL
		}
		recall := RecallAtK(NormalizeURLs(predicted), NormalizeURLs(item.RelevantURLs), k)
		logger.Printf("query %q recall@%d: %.3f", item.Query, k, recall)
		sum += recall
	}

	mean := sum / float64(len(items))
	logger.Printf("mean recall@%d over %d queries: %.4f", k, len(items), mean)
	return mean, nil
}
