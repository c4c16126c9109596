package dblp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"testing"
	"time"
)

const searchFixture = `{
  "result": {
    "hits": {
      "@total": "2",
      "hit": [
        {"info": {
          "authors": {"author": [
            {"@pid": "g/MichaelGelfond", "text": "Michael Gelfond"},
            {"@pid": "s/TranCaoSon", "text": "Tran Cao Son 0001"}
          ]},
          "title": "A Paper.",
          "venue": "Artif. Intell.",
          "volume": "12",
          "year": "1991",
          "type": "Journal Articles",
          "key": "journals/ai/GelfondS91",
          "doi": "10.1016/0004-3702(91)90002-2"
        }},
        {"info": {
          "authors": {"author": {"@pid": "l/Lifschitz", "text": "Vladimir Lifschitz"}},
          "title": "Another Paper.",
          "venue": "LPNMR",
          "year": "1991",
          "type": "Conference and Workshop Papers",
          "key": "conf/lpnmr/Lifschitz91"
        }}
      ]
    }
  }
}`

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		MaxResults:     5,
		RateLimit:      1000,
		MaxRetries:     3,
		RateLimitDelay: time.Millisecond,
		RetryDelay:     time.Millisecond,
	})
}

func TestQuery(t *testing.T) {
	tests := []struct {
		title, year string
		want        string
	}{
		{"Stable Models & Circumscription!", "1991", "stable models  circumscription 1991"},
		{"Well-Founded Semantics", "1991", "well-founded semantics 1991"},
		{"", "2020", " 2020"},
	}
	for _, tt := range tests {
		if got := Query(tt.title, tt.year); got != tt.want {
			t.Errorf("Query(%q, %q) = %q, want %q", tt.title, tt.year, got, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := testClient(server.URL)
	hits, err := client.Search(context.Background(), "a paper 1991")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery.Get("q") != "a paper 1991" || gotQuery.Get("format") != "json" || gotQuery.Get("h") != "5" {
		t.Errorf("query params = %v", gotQuery)
	}
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}
	first := hits[0]
	if first.Key != "journals/ai/GelfondS91" || first.Venue != "Artif. Intell." {
		t.Errorf("first hit = %+v", first)
	}
	if want := []string{"Michael Gelfond", "Tran Cao Son"}; !slices.Equal([]string(first.Authors), want) {
		t.Errorf("authors = %v, want %v (disambiguator kept?)", first.Authors, want)
	}
	if got := hits[1].Authors; len(got) != 1 || got[0] != "Vladimir Lifschitz" {
		t.Errorf("single author = %v", got)
	}
}

func TestSearchRetriesRateLimit(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch requests {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.Write([]byte(`{"result": {"hits": {"hit": []}}}`))
		}
	}))
	defer server.Close()

	hits, err := testClient(server.URL).Search(context.Background(), "q 2020")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %v, want none", hits)
	}
	if requests != 3 {
		t.Errorf("requests = %d, want 3", requests)
	}
}

func TestSearchRateLimitExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "q 2020")
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("Search() error = %v, want a RateLimitError", err)
	}
}

func TestSearchRetriesServerError(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"result": {"hits": {"hit": []}}}`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Search(context.Background(), "q 2020"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
}

func TestSearchFailsFast(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Search(context.Background(), "q 2020"); err == nil {
		t.Fatal("Search() succeeded on a 404")
	}
	if requests != 1 {
		t.Errorf("requests = %d, want no retries", requests)
	}
}

func TestSearchBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Search(context.Background(), "q 2020"); err == nil {
		t.Fatal("Search() succeeded on a malformed payload")
	}
}
