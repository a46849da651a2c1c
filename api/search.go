package api

import (
	"context"
	"sync"

	"github.com/litekite/litekite"
)

// Searcher serializes search-as-you-type lookups with a last-query-wins
// policy: the rendered result set always reflects the most recently issued
// query, even when responses arrive out of order. Staleness is decided at
// response-handling time, not at request-issuing time.
type Searcher struct {
	client *Client
	market Market
	limit  int

	mu      sync.Mutex
	seq     uint64
	applied string
	results []litekite.SearchResult
	err     error
}

// NewSearcher returns a searcher bound to one market.
func (c *Client) NewSearcher(m Market, limit int) *Searcher {
	return &Searcher{client: c, market: m, limit: limit}
}

// Lookup issues a search for the query in the background. The returned
// channel closes once the response has been handled, applied or discarded.
func (s *Searcher) Lookup(ctx context.Context, query string) <-chan struct{} {
	s.mu.Lock()
	s.seq++
	issued := s.seq
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		results, err := s.client.Search(ctx, s.market, query, s.limit)

		s.mu.Lock()
		defer s.mu.Unlock()
		if issued != s.seq {
			return // a newer query has since been issued, discard
		}
		s.applied, s.results, s.err = query, results, err
	}()
	return done
}

// Results returns the latest applied result set, the query it belongs to,
// and the error of that lookup if it failed.
func (s *Searcher) Results() ([]litekite.SearchResult, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results, s.applied, s.err
}
