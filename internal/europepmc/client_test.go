// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package europepmc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubtrend/pkg/types"
)

const samplePageJSON = `{
  "hitCount": 42,
  "nextCursorMark": "AoJwgOu3iP0C",
  "resultList": {
    "result": [
      {
        "id": "33500000",
        "source": "MED",
        "title": "A study of things",
        "pubYear": "2021",
        "firstPublicationDate": "2021-01-28"
      },
      {
        "id": "PPR290000",
        "source": "PPR",
        "title": "A preprint of things",
        "firstPublicationDate": "2020-12-01",
        "electronicPublicationDate": "2020-11-30"
      }
    ]
  }
}`

// withServer points searchBase at a test server for the duration of the test.
func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(handler)
	orig := searchBase
	searchBase = ts.URL
	t.Cleanup(func() {
		searchBase = orig
		ts.Close()
	})
}

func testClient() *Client {
	cfg := types.TrendConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "pubtrend-test/0.1",
		},
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestSearch_RequestShape(t *testing.T) {
	var gotQuery map[string][]string
	var gotUA string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(samplePageJSON))
	})

	page, err := testClient().Search(context.Background(), "malaria vaccine", 1000, InitialCursor)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	wantParams := map[string]string{
		"query":      "malaria vaccine",
		"format":     "json",
		"resultType": "lite",
		"pageSize":   "1000",
		"cursorMark": "*",
	}
	for k, want := range wantParams {
		if len(gotQuery[k]) != 1 || gotQuery[k][0] != want {
			t.Errorf("param %s = %v, want %q", k, gotQuery[k], want)
		}
	}
	if gotUA != "pubtrend-test/0.1" {
		t.Errorf("User-Agent = %q", gotUA)
	}

	if page.HitCount != 42 {
		t.Errorf("HitCount = %d, want 42", page.HitCount)
	}
	if page.NextCursorMark != "AoJwgOu3iP0C" {
		t.Errorf("NextCursorMark = %q", page.NextCursorMark)
	}
	if len(page.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(page.Results))
	}
	first := page.Results[0]
	if first.ID != "33500000" || first.PubYear != "2021" || first.FirstPublicationDate != "2021-01-28" {
		t.Errorf("first record = %+v", first)
	}
	second := page.Results[1]
	if second.PubYear != "" || second.ElectronicPublicationDate != "2020-11-30" {
		t.Errorf("second record = %+v", second)
	}
}

func TestSearch_ForwardsCursor(t *testing.T) {
	var gotCursor string
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotCursor = r.URL.Query().Get("cursorMark")
		w.Write([]byte(`{"hitCount":0,"nextCursorMark":"","resultList":{"result":[]}}`))
	})

	if _, err := testClient().Search(context.Background(), "x", 25, "AoJ123"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotCursor != "AoJ123" {
		t.Errorf("cursorMark = %q, want %q", gotCursor, "AoJ123")
	}
}

func TestSearch_HTTPErrorStatus(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := testClient().Search(context.Background(), "x", 10, InitialCursor)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
	if netErr.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", netErr.Status)
	}
}

func TestSearch_ConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	orig := searchBase
	searchBase = ts.URL
	t.Cleanup(func() { searchBase = orig })
	ts.Close()

	_, err := testClient().Search(context.Background(), "x", 10, InitialCursor)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := testClient().Search(context.Background(), "x", 10, InitialCursor)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}
