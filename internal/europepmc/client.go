// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package europepmc fetches single pages of results from the Europe PMC
// REST search API using cursor-based pagination.
package europepmc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pdiddy/pubtrend/pkg/types"
)

// searchBase is the Europe PMC search endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchBase = "https://www.ebi.ac.uk/europepmc/webservices/rest/search"

// InitialCursor is the sentinel cursorMark marking the start of results.
const InitialCursor = "*"

// Client issues search page requests against Europe PMC. One outbound HTTP
// request per Search call; no retries, failures propagate to the caller.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	log        zerolog.Logger
}

// NewClient builds a Client from cfg. A RateLimit of zero disables
// client-side rate limiting.
func NewClient(cfg types.TrendConfig, log zerolog.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		userAgent:  cfg.UserAgent,
		log:        log.With().Str("component", "europepmc").Logger(),
	}
}

// Search fetches one page of results for query. cursor is the opaque
// continuation token from the previous page, or InitialCursor for the
// first page.
func (c *Client) Search(ctx context.Context, query string, pageSize int, cursor string) (*Page, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	params := url.Values{
		"query":      {query},
		"format":     {"json"},
		"resultType": {"lite"},
		"pageSize":   {strconv.Itoa(pageSize)},
		"cursorMark": {cursor},
	}
	reqURL := searchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{URL: reqURL, Status: resp.StatusCode}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &DecodeError{Err: err}
	}

	c.log.Debug().
		Str("cursor", cursor).
		Int("hit_count", sr.HitCount).
		Int("records", len(sr.ResultList.Result)).
		Msg("page fetched")

	return &Page{
		HitCount:       sr.HitCount,
		NextCursorMark: sr.NextCursorMark,
		Results:        sr.ResultList.Result,
	}, nil
}
