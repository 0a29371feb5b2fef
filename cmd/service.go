package main

import (
	"github.com/talentsift/talentsift/config"
	"github.com/talentsift/talentsift/internal/catalog"
	"github.com/talentsift/talentsift/internal/recommend"
	"github.com/talentsift/talentsift/internal/vectorstore"
	"github.com/talentsift/talentsift/provider"
)

// buildService wires the pipeline for the offline commands, which run it
// directly instead of going through the HTTP server.
func buildService(cfg *config.Config) (*recommend.Service, error) {
	docs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	embedder := provider.NewEmbeddingProvider(cfg.Embedding)
	llm := provider.NewRerankProvider(cfg.LLM)
	store := vectorstore.New(cfg.Vector, cfg.Catalog.Collection, embedder, docs, nil)
	return recommend.NewService(store, llm, nil), nil
}
