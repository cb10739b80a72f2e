// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ModelConfig holds settings for the chat-completions client.
type ModelConfig struct {
	// BaseURL is the API root (default "https://api.openai.com/v1"). Point
	// it at an Azure OpenAI or other compatible deployment to switch
	// providers.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Name is the model identifier (e.g. "gpt-4o").
	Name string `json:"name" yaml:"name"`

	// APIKey is the bearer token for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the completion length (default 2000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout is the HTTP request timeout (default 120s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts for rate-limited or
	// failing API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExportConfig holds settings for the document exporter.
type ExportConfig struct {
	// OutputDir is the directory for exported documents and the combined
	// archive (default "output/docs").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// StoreConfig holds settings for the results store.
type StoreConfig struct {
	// IndexDir is the directory holding the SQLite database
	// (default "output/index").
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Model  ModelConfig  `json:"model" yaml:"model"`
	Export ExportConfig `json:"export" yaml:"export"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
