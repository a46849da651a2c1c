package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestSearcher_LastQueryWins(t *testing.T) {
	// "A"'s response is delayed past "AB"'s; the rendered result set must
	// reflect "AB", never "A".
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "A" {
			<-release
		}
		fmt.Fprintf(w, `[{"name": "match for %s", "symbol": "%s"}]`, q, q)
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	s := c.NewSearcher(US, 5)

	ctx := context.Background()
	slow := s.Lookup(ctx, "A")
	fast := s.Lookup(ctx, "AB")
	<-fast
	close(release)
	<-slow

	results, query, err := s.Results()
	if err != nil {
		t.Fatalf("Results() unexpected error = %v", err)
	}
	if query != "AB" {
		t.Errorf("applied query = %q, want %q", query, "AB")
	}
	if len(results) != 1 || results[0].Symbol != "AB" {
		t.Errorf("results = %+v, want the match for AB", results)
	}
}

func TestSearcher_AppliesFreshestOfMany(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		// Earlier queries respond slower, forcing out-of-order arrival.
		time.Sleep(time.Duration(5-len(q)) * 20 * time.Millisecond)
		fmt.Fprintf(w, `[{"name": "n", "symbol": "%s"}]`, q)
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	s := c.NewSearcher(US, 5)

	ctx := context.Background()
	var wg sync.WaitGroup
	for _, q := range []string{"T", "TS", "TSL", "TSLA"} {
		done := s.Lookup(ctx, q)
		wg.Add(1)
		go func() { defer wg.Done(); <-done }()
	}
	wg.Wait()

	_, query, err := s.Results()
	if err != nil {
		t.Fatalf("Results() unexpected error = %v", err)
	}
	if query != "TSLA" {
		t.Errorf("applied query = %q, want %q", query, "TSLA")
	}
}

func TestSearch_EscapesQuery(t *testing.T) {
	var gotQ string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	if _, err := c.Search(context.Background(), India, "tata & sons", 5); err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if gotQ != "tata & sons" {
		t.Errorf("decoded query = %q, want %q", gotQ, "tata & sons")
	}
}
