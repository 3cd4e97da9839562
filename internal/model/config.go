package model

import "time"

// Config holds the full application configuration
type Config struct {
	PubMed      PubMedConfig      `yaml:"pubmed"`
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// PubMedConfig configures the literature search client
type PubMedConfig struct {
	BaseURL       string        `yaml:"base_url"`       // NCBI E-utilities base URL
	APIKey        string        `yaml:"api_key"`        // Optional key for elevated rate limits
	SearchTimeout time.Duration `yaml:"search_timeout"` // ESearch request timeout
	FetchTimeout  time.Duration `yaml:"fetch_timeout"`  // EFetch request timeout
	MaxResults    int           `yaml:"max_results"`    // Articles per lookup
	Years         int           `yaml:"years"`          // Recency window for lookups
}

// LLMConfig configures the claim extraction backend
type LLMConfig struct {
	Provider  string `yaml:"provider"`   // gemini, openai, anthropic
	Model     string `yaml:"model"`      // Model name (provider-specific)
	APIKey    string `yaml:"-"`          // Never serialized; from environment
	BaseURL   string `yaml:"base_url"`   // Custom endpoint override
	Timeout   int    `yaml:"timeout"`    // Seconds
	MaxTokens int    `yaml:"max_tokens"` // Response length limit
}

// CacheConfig configures query and fetch caching
type CacheConfig struct {
	QueryCapacity int           `yaml:"query_capacity"` // Max distinct search keys (LRU)
	FetchTTL      time.Duration `yaml:"fetch_ttl"`      // TTL for cached EFetch bodies
}

// ConcurrencyConfig bounds parallel work
type ConcurrencyConfig struct {
	ResolverWorkers int `yaml:"resolver_workers"` // Concurrent per-claim literature lookups
	BatchWorkers    int `yaml:"batch_workers"`    // Concurrent collateral reviews in batch mode
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PubMed: PubMedConfig{
			BaseURL:       "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
			SearchTimeout: 10 * time.Second,
			FetchTimeout:  15 * time.Second,
			MaxResults:    5,
			Years:         10,
		},
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "",
			Timeout:   60,
			MaxTokens: 8192,
		},
		Cache: CacheConfig{
			QueryCapacity: 1000,
			FetchTTL:      30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			ResolverWorkers: 5,
			BatchWorkers:    3,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
