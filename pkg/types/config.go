package types

import "time"

// HTTPConfig holds shared HTTP settings used by collaborators that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "geo-curator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchTerms holds the keyword sets driving query construction and the
// post-fetch inclusion filter. It is treated as immutable for the duration
// of a run.
type SearchTerms struct {
	// Keywords is the broad, high-recall domain vocabulary used in the
	// Entrez query itself.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Organisms restricts the query to these taxa.
	Organisms []string `json:"organisms" yaml:"organisms"`

	// DataTypes restricts the query to these GEO dataset types.
	DataTypes []string `json:"data_types" yaml:"data_types"`

	// RequireKeywords tighten precision after the fetch: a candidate must
	// contain at least one of them.
	RequireKeywords []string `json:"require_keywords" yaml:"require_keywords"`

	// ExcludeKeywords veto a candidate regardless of require matches.
	ExcludeKeywords []string `json:"exclude_keywords" yaml:"exclude_keywords"`
}

// EntrezConfig holds settings for the NCBI E-utilities collaborator.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email identifies the caller to NCBI. Mandatory for update runs.
	Email string `json:"email" yaml:"email"`

	// APIKey raises the NCBI rate limit. Optional; requests proceed
	// unauthenticated without it.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// RetMax caps the number of ids returned by a search (default 500).
	RetMax int `json:"retmax" yaml:"retmax"`

	// WindowDays bounds the search to records modified within the last
	// N days (default 30).
	WindowDays int `json:"window_days" yaml:"window_days"`
}

// SummaryConfig holds settings for the summarization collaborator.
type SummaryConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the chat model identifier (e.g. "MiniMax-M2.1").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates the summarization API. When empty,
	// summarization is skipped and the AI summary fields stay empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxChars bounds the abstract text inserted into the prompt
	// (default 800, counted in runes).
	MaxChars int `json:"max_chars" yaml:"max_chars"`
}

// PipelineConfig groups the collaborator configurations for one update run.
type PipelineConfig struct {
	Entrez  EntrezConfig  `json:"entrez" yaml:"entrez"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	Terms   SearchTerms   `json:"terms" yaml:"terms"`

	// DataFile is the corpus path (default "data/geo_data.json").
	DataFile string `json:"data_file" yaml:"data_file"`

	// DryRun reports what would be added without writing the corpus.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}
