package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rsharda/medreview/internal/cache"
	"github.com/rsharda/medreview/internal/llm"
	"github.com/rsharda/medreview/internal/model"
	"github.com/rsharda/medreview/internal/pubmed"
	"github.com/rsharda/medreview/internal/review"
)

// buildReviewer wires the full pipeline from configuration: extraction
// provider, PubMed client behind the query cache, and the reviewer itself.
func buildReviewer(cfg *model.Config) (*review.Reviewer, error) {
	switch cfg.LLM.Provider {
	case "gemini", "google":
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	}

	if cfg.PubMed.APIKey == "" {
		cfg.PubMed.APIKey = os.Getenv("PUBMED_API_KEY")
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize extraction provider: %w", err)
	}

	fetchCache := cache.NewMemoryCache(cfg.Cache.FetchTTL, 10*time.Minute)
	client := pubmed.NewClient(cfg.PubMed, fetchCache)
	queryCache, err := cache.NewQueryCache(client, cfg.Cache.QueryCapacity)
	if err != nil {
		return nil, fmt.Errorf("initialize query cache: %w", err)
	}

	return review.NewReviewer(provider, queryCache, cfg), nil
}

// loadBackupDocs reads backup documents from explicit paths and/or every
// regular file in a directory
func loadBackupDocs(paths []string, dir string) ([]model.BackupDocument, error) {
	var docs []model.BackupDocument

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read backup directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read backup document %s: %w", path, err)
		}
		docs = append(docs, model.BackupDocument{
			Filename: filepath.Base(path),
			Text:     string(text),
		})
	}

	return docs, nil
}
