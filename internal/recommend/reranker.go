package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/talentsift/talentsift/internal/catalog"
)

const (
	// candidatePoolSize is how many documents vector search retrieves so the
	// reranker has enough to pick 5-10 from.
	candidatePoolSize = 20

	maxRecommendations = 10
	minRecommendations = 5
)

// Completer is the single operation the reranker needs from the language
// model service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Selection is the outcome of one rerank pass. Indices are 1-based positions
// into the candidate list, already validated, deduplicated and bounded.
// Fallback is true when the model's output could not be parsed and
// similarity order was used instead.
type Selection struct {
	Indices  []int
	Fallback bool
}

type reranker struct {
	llm    Completer
	logger *log.Logger
}

// rerank asks the model to pick the most relevant candidates. The model is
// trusted only to select and order within the enumerated list; every factual
// field still comes from the catalog.
func (r *reranker) rerank(ctx context.Context, jobDescription string, docs []catalog.Document) (Selection, error) {
	prompt := buildRerankPrompt(jobDescription, docs)

	content, err := r.llm.Complete(ctx, prompt)
	if err != nil {
		return Selection{}, err
	}

	values, ok := parseIndexArray(content)
	sel := Selection{Fallback: !ok}
	var indices []int
	if ok {
		indices = coerceIndices(values)
	} else {
		r.logger.Printf("reranker returned unparseable output, falling back to similarity order")
		rerankFallbackTotal.Inc()
		limit := minRecommendations
		if len(docs) < limit {
			limit = len(docs)
		}
		for i := 1; i <= limit; i++ {
			indices = append(indices, i)
		}
	}

	sel.Indices = normalizeIndices(indices, len(docs))
	return sel, nil
}

func buildRerankPrompt(query string, docs []catalog.Document) string {
	var blocks strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&blocks, "Assessment %d:\nName: %s\nDescription: %s\nTest Types: %s\nDuration: %s\n\n",
			i+1,
			doc.Record.Name,
			doc.Record.Description,
			strings.Join(doc.Record.TestTypes, ", "),
			doc.Record.DurationText(),
		)
	}

	return fmt.Sprintf(`You are selecting the most relevant assessments.

Job requirement:
%s

Assessments:
%s
Return ONLY a JSON array of indices (1-based).
Maximum 10.

Example:
[1, 3, 5]`, query, blocks.String())
}

// parseIndexArray reports false when the content is not a JSON array, which
// routes the caller onto the fallback branch.
func parseIndexArray(content string) ([]interface{}, bool) {
	var raw interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, false
	}
	arr, ok := raw.([]interface{})
	return arr, ok
}

// coerceIndices converts array entries to ints, silently skipping anything
// that is not coercible.
func coerceIndices(values []interface{}) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case float64:
			out = append(out, int(n))
		case string:
			i, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil {
				continue
			}
			out = append(out, i)
		case bool:
			// Booleans coerce like integers: true is 1, false is 0
			// (0 is out of range and dropped by normalization).
			if n {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// normalizeIndices applies the selection policy: keep in-range indices in
// order, drop duplicates, stop at 10 accepted, then fill by ascending
// similarity rank until at least 5 (or the candidates run out).
func normalizeIndices(indices []int, candidateCount int) []int {
	seen := make(map[int]bool, len(indices))
	clean := make([]int, 0, maxRecommendations)
	for _, i := range indices {
		if i < 1 || i > candidateCount || seen[i] {
			continue
		}
		clean = append(clean, i)
		seen[i] = true
		if len(clean) >= maxRecommendations {
			break
		}
	}

	if len(clean) < minRecommendations {
		for i := 1; i <= candidateCount && len(clean) < minRecommendations; i++ {
			if seen[i] {
				continue
			}
			clean = append(clean, i)
			seen[i] = true
		}
	}

	if len(clean) > maxRecommendations {
		clean = clean[:maxRecommendations]
	}
	return clean
}
