// Package recommend implements the retrieval-and-rerank pipeline: semantic
// candidate retrieval, solution-type filtering, LLM reranking over a closed
// candidate list, and normalization into the strict output schema.
package recommend

import (
	"context"
	"fmt"
	"log"

	"github.com/talentsift/talentsift/internal/catalog"
)

// DefaultRawK is the top-k used by retrieval-only evaluation.
const DefaultRawK = 10

// Retriever returns the nearest catalog documents for a query, best match
// first.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]catalog.Document, error)
}

// Recommendation is the output schema. solution_type is deliberately not
// part of this struct; it can never leak into responses.
type Recommendation struct {
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	RemoteSupport   string   `json:"remote_support"`
	AdaptiveSupport string   `json:"adaptive_support"`
	TestType        []string `json:"test_type"`
}

// RawResult is the retrieval-only output used for offline evaluation.
type RawResult struct {
	URL string `json:"url"`
}

// Service composes retrieval, filtering, reranking and normalization into
// the public recommendation operations. Stateless across calls and safe for
// concurrent use.
type Service struct {
	retriever Retriever
	reranker  *reranker
	logger    *log.Logger
}

// NewService wires the pipeline. Input validation (non-empty query) belongs
// to the API boundary, not here.
func NewService(retriever Retriever, llm Completer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(log.Writer(), "[RECO] ", log.LstdFlags)
	}
	return &Service{
		retriever: retriever,
		reranker:  &reranker{llm: llm, logger: logger},
		logger:    logger,
	}
}

// Recommend runs the full pipeline and returns 5-10 recommendations
// whenever at least 5 distinct filtered candidates exist; fewer only when
// the filtered pool itself is smaller.
func (s *Service) Recommend(ctx context.Context, jobDescription string) ([]Recommendation, error) {
	docs, err := s.retriever.Search(ctx, jobDescription, candidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates: %w", err)
	}

	filtered := filterCandidates(docs)

	sel, err := s.reranker.rerank(ctx, jobDescription, filtered)
	if err != nil {
		return nil, fmt.Errorf("reranking candidates: %w", err)
	}

	recs := make([]Recommendation, 0, len(sel.Indices))
	for _, idx := range sel.Indices {
		rec := filtered[idx-1].Record
		recs = append(recs, Recommendation{
			Name:            rec.Name,
			URL:             rec.URL,
			Description:     rec.Description,
			Duration:        ParseDurationMinutes(rec.DurationText()),
			RemoteSupport:   NormalizeYesNo(rec.RemoteTestingSupport),
			AdaptiveSupport: NormalizeYesNo(rec.AdaptiveIRTSupport),
			TestType:        MapTestTypesToCodes(rec.TestTypes),
		})
	}
	return recs, nil
}

// RecommendRaw is the retrieval-only variant: top-k filtered candidates by
// vector order, as normalized URLs. It never touches the language model, so
// retrieval quality can be measured independently of it.
func (s *Service) RecommendRaw(ctx context.Context, jobDescription string, k int) ([]RawResult, error) {
	if k <= 0 {
		k = DefaultRawK
	}

	docs, err := s.retriever.Search(ctx, jobDescription, candidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates: %w", err)
	}

	filtered := filterCandidates(docs)
	if k > len(filtered) {
		k = len(filtered)
	}

	out := make([]RawResult, 0, k)
	for _, d := range filtered[:k] {
		out = append(out, RawResult{URL: NormalizeURL(d.Record.URL)})
	}
	return out, nil
}
