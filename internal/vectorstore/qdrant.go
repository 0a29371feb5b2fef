// Package vectorstore provides a Qdrant-backed retriever for catalog
// documents. The collection is bootstrapped lazily on first use: if the
// named collection does not exist it is built from the loaded catalog.
package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/talentsift/talentsift/config"
	"github.com/talentsift/talentsift/internal/catalog"
)

const bootstrapBatchSize = 100

// Embedder converts text into fixed-dimension vectors.
type Embedder interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

// Client is a lazy Qdrant client. Safe for concurrent use; at most one
// bootstrap runs even under concurrent first requests.
type Client struct {
	cfg        config.VectorConfig
	collection string
	embedder   Embedder
	docs       []catalog.Document
	httpClient *http.Client
	logger     *log.Logger

	mu    sync.Mutex
	ready bool
}

// New creates a client over the given catalog documents. No network calls
// happen until EnsureReady or Search.
func New(cfg config.VectorConfig, collection string, embedder Embedder, docs []catalog.Document, logger *log.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[VECTOR] ", log.LstdFlags)
	}
	return &Client{
		cfg:        cfg,
		collection: collection,
		embedder:   embedder,
		docs:       docs,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// EnsureReady verifies configuration, attaches to the collection and builds
// it from the catalog when absent. Idempotent; failures are retryable on the
// next call.
func (c *Client) EnsureReady(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if strings.TrimSpace(c.cfg.URL) == "" {
		return &config.MissingError{Key: "vector.url"}
	}
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return &config.MissingError{Key: "vector.api_key"}
	}

	exists, err := c.collectionExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		c.logger.Printf("collection %s not found, building it from %d catalog documents", c.collection, len(c.docs))
		if err := c.bootstrap(ctx); err != nil {
			return fmt.Errorf("bootstrapping collection %s: %w", c.collection, err)
		}
	}
	c.ready = true
	return nil
}

// Search embeds the query and returns the k nearest documents, best match
// first. Never mutates index state beyond the one-time bootstrap.
func (c *Client) Search(ctx context.Context, query string, k int) ([]catalog.Document, error) {
	if err := c.EnsureReady(ctx); err != nil {
		return nil, err
	}

	vecs, err := c.embedder.CreateEmbedding(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("embedding query: empty result")
	}

	reqBody := map[string]interface{}{
		"vector":       vecs[0],
		"limit":        k,
		"with_payload": true,
	}
	var resp struct {
		Result []struct {
			Score   float64        `json:"score"`
			Payload catalog.Record `json:"payload"`
		} `json:"result"`
	}
	status, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/collections/%s/points/search", c.collection), reqBody, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("qdrant search returned status %d", status)
	}

	docs := make([]catalog.Document, 0, len(resp.Result))
	for _, hit := range resp.Result {
		docs = append(docs, catalog.Document{Content: hit.Payload.ContentText(), Record: hit.Payload})
	}
	return docs, nil
}

func (c *Client) collectionExists(ctx context.Context) (bool, error) {
	status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/collections/%s", c.collection), nil, nil)
	if err != nil {
		return false, err
	}
	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("qdrant collection probe returned status %d", status)
	}
}

func (c *Client) bootstrap(ctx context.Context) error {
	if len(c.docs) == 0 {
		return fmt.Errorf("no catalog documents to index")
	}

	// Embed in batches; the vector size of the collection comes from the
	// first embedding so the config never has to state the dimension.
	vectors := make([][]float32, 0, len(c.docs))
	for start := 0; start < len(c.docs); start += bootstrapBatchSize {
		end := start + bootstrapBatchSize
		if end > len(c.docs) {
			end = len(c.docs)
		}
		texts := make([]string, 0, end-start)
		for _, doc := range c.docs[start:end] {
			texts = append(texts, doc.Content)
		}
		vecs, err := c.embedder.CreateEmbedding(ctx, texts)
		if err != nil {
			return fmt.Errorf("embedding catalog batch: %w", err)
		}
		if len(vecs) != len(texts) {
			return fmt.Errorf("embedding catalog batch: got %d vectors for %d texts", len(vecs), len(texts))
		}
		vectors = append(vectors, vecs...)
	}

	createBody := map[string]interface{}{
		"vectors": map[string]interface{}{
			"size":     len(vectors[0]),
			"distance": "Cosine",
		},
	}
	status, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s", c.collection), createBody, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant create collection returned status %d", status)
	}

	type point struct {
		ID      string         `json:"id"`
		Vector  []float32      `json:"vector"`
		Payload catalog.Record `json:"payload"`
	}
	points := make([]point, len(c.docs))
	for i, doc := range c.docs {
		points[i] = point{ID: uuid.NewString(), Vector: vectors[i], Payload: doc.Record}
	}
	status, err = c.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s/points?wait=true", c.collection), map[string]interface{}{"points": points}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant upsert returned status %d", status)
	}
	c.logger.Printf("indexed %d documents into collection %s", len(points), c.collection)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.URL, "/")+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
