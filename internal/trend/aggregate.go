// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trend aggregates Europe PMC search results into per-year
// publication counts by paging through the API with a cursor.
package trend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubtrend/internal/europepmc"
	"github.com/pdiddy/pubtrend/pkg/types"
)

const (
	// DefaultPageSize is the number of records requested per page.
	DefaultPageSize = 1000

	// DefaultMaxPages caps page fetches per run.
	DefaultMaxPages = 100
)

var (
	// ErrEmptyQuery is returned when the query contains no searchable text.
	// No request is issued in that case.
	ErrEmptyQuery = errors.New("query is empty: provide a search term")

	// ErrRunActive is returned when a run is started while another run on
	// the same Runner is still in flight.
	ErrRunActive = errors.New("an aggregation run is already active")
)

// Fetcher fetches one page of search results. Implemented by
// *europepmc.Client; tests substitute fakes.
type Fetcher interface {
	Search(ctx context.Context, query string, pageSize int, cursor string) (*europepmc.Page, error)
}

// Result holds the outcome of one aggregation run: the ordered series and
// diagnostic statistics.
type Result struct {
	Series []types.Point
	Stats  types.RunStats
}

// Runner drives the pagination loop. At most one run per Runner is active
// at a time; overlapping runs are rejected with ErrRunActive.
type Runner struct {
	fetcher Fetcher
	log     zerolog.Logger
	running atomic.Bool
}

// NewRunner returns a Runner backed by fetcher.
func NewRunner(fetcher Fetcher, log zerolog.Logger) *Runner {
	return &Runner{
		fetcher: fetcher,
		log:     log.With().Str("component", "trend").Logger(),
	}
}

// Run pages through all results for query, tallies publications per year,
// and returns the ascending (year, count) series. Pages are fetched
// strictly sequentially. Progress is written to w after every page as a
// monotonically increasing "processed/total" pair.
//
// Any fetch error aborts the whole run; counts accumulated from earlier
// pages are discarded and no partial result is returned. Cancelling ctx
// stops the loop before the next fetch.
//
// The loop terminates when all reported hits are consumed, when a page
// comes back empty, when the cursor stops advancing, or when the page cap
// is reached. The last three guards bound runtime when the API reports a
// hit count inconsistent with the pages it actually returns.
func (r *Runner) Run(ctx context.Context, query string, cfg types.TrendConfig, w io.Writer) (Result, error) {
	if strings.TrimSpace(query) == "" {
		return Result{}, ErrEmptyQuery
	}
	if !r.running.CompareAndSwap(false, true) {
		return Result{}, ErrRunActive
	}
	defer r.running.Store(false)

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	counts := make(map[int]int)
	var stats types.RunStats
	now := time.Now()
	cursor := europepmc.InitialCursor

	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		page, err := r.fetcher.Search(ctx, query, pageSize, cursor)
		if err != nil {
			return Result{}, fmt.Errorf("fetching page %d: %w", stats.Pages+1, err)
		}
		stats.Pages++

		if stats.Pages == 1 {
			stats.TotalHits = page.HitCount
			if len(page.Results) > 0 {
				stats.Sample = sampleOf(page.Results[0])
			}
		}

		accumulate(counts, page.Results, now)
		stats.Processed += len(page.Results)

		fmt.Fprintf(w, "progress: %d/%d\n", stats.Processed, stats.TotalHits)
		r.log.Debug().
			Int("page", stats.Pages).
			Int("processed", stats.Processed).
			Int("total", stats.TotalHits).
			Msg("page aggregated")

		if stats.Processed >= stats.TotalHits || len(page.Results) == 0 {
			break
		}
		if page.NextCursorMark == "" || page.NextCursorMark == cursor {
			r.log.Warn().Str("cursor", cursor).Msg("cursor stopped advancing before all hits were consumed")
			break
		}
		if stats.Pages >= maxPages {
			r.log.Warn().Int("max_pages", maxPages).Msg("page cap reached before all hits were consumed")
			break
		}
		cursor = page.NextCursorMark
	}

	stats.DistinctYears = len(counts)
	return Result{Series: buildSeries(counts), Stats: stats}, nil
}

// accumulate folds one page of records into the per-year counts.
func accumulate(counts map[int]int, records []europepmc.Record, now time.Time) {
	for _, rec := range records {
		if y, ok := deriveYear(rec, now); ok {
			counts[y]++
		}
	}
}

func sampleOf(r europepmc.Record) *types.SampleRecord {
	return &types.SampleRecord{
		ID:                        r.ID,
		Title:                     r.Title,
		PubYear:                   r.PubYear,
		FirstPublicationDate:      r.FirstPublicationDate,
		ElectronicPublicationDate: r.ElectronicPublicationDate,
	}
}
