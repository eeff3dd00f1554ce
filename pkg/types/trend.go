// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubtrend pipeline.
package types

// Point is one datum in the publication-trend series: the number of
// publications counted for a single year. Series are always ordered
// ascending by year.
type Point struct {
	// Year is the four-digit publication year.
	Year int `json:"year" yaml:"year"`

	// Citations is the number of publications counted for Year.
	Citations int `json:"citations" yaml:"citations"`
}

// SampleRecord holds the first record of the first page of a run. It is
// kept for diagnostic display only and is never persisted.
type SampleRecord struct {
	ID                        string `json:"id" yaml:"id"`
	Title                     string `json:"title" yaml:"title"`
	PubYear                   string `json:"pub_year,omitempty" yaml:"pub_year,omitempty"`
	FirstPublicationDate      string `json:"first_publication_date,omitempty" yaml:"first_publication_date,omitempty"`
	ElectronicPublicationDate string `json:"electronic_publication_date,omitempty" yaml:"electronic_publication_date,omitempty"`
}

// RunStats summarizes one aggregation run for diagnostics.
type RunStats struct {
	// TotalHits is the total hit count reported by the API on the first page.
	TotalHits int `json:"total_hits" yaml:"total_hits"`

	// Processed is the number of records actually consumed from pages.
	Processed int `json:"processed" yaml:"processed"`

	// DistinctYears is the number of distinct valid years seen.
	DistinctYears int `json:"distinct_years" yaml:"distinct_years"`

	// Pages is the number of pages fetched.
	Pages int `json:"pages" yaml:"pages"`

	// Sample is the first record of the first page, if any.
	Sample *SampleRecord `json:"sample,omitempty" yaml:"sample,omitempty"`
}
