// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package europepmc

// Record is one bibliographic entry from a search page. Only the three
// date-like fields participate in year derivation; the rest is kept for
// diagnostic display.
type Record struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	PMID         string `json:"pmid"`
	DOI          string `json:"doi"`
	Title        string `json:"title"`
	AuthorString string `json:"authorString"`

	// PubYear is the explicit publication year, e.g. "2020".
	PubYear string `json:"pubYear"`

	// FirstPublicationDate is the earliest publication date, e.g. "2019-05-01".
	FirstPublicationDate string `json:"firstPublicationDate"`

	// ElectronicPublicationDate is the electronic publication date, if any.
	ElectronicPublicationDate string `json:"electronicPublicationDate"`
}

// Page is the decoded result of one search call.
type Page struct {
	// HitCount is the total number of matches reported by the API.
	HitCount int

	// NextCursorMark is the opaque continuation token for the next page.
	NextCursorMark string

	// Results holds the records of this page in API order.
	Results []Record
}

// Europe PMC API JSON structure.
type searchResponse struct {
	HitCount       int    `json:"hitCount"`
	NextCursorMark string `json:"nextCursorMark"`
	ResultList     struct {
		Result []Record `json:"result"`
	} `json:"resultList"`
}
