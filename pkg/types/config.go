// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubtrend/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TrendConfig holds settings for a publication-trend run.
type TrendConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the number of records requested per API call (default 1000).
	// Larger pages reduce round-trips at the cost of per-call latency and
	// memory for the decoded batch.
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxPages caps the number of page fetches in one run (default 100).
	// The cap bounds runtime when the API reports a hit count that is
	// inconsistent with the pages it actually returns.
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// RateLimit is the maximum page requests per second (default 2).
	// Zero disables client-side rate limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// OutputDir is the directory export files are written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
