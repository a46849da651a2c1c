package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStockChart_PlucksDatesAndCloses(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock_data/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		// The provider payload nests a lot more than we need.
		w.Write([]byte(`{
			"ticker": "AAPL",
			"data": [
				{"date": "2026-08-25", "open": 158.0, "close": 160.0, "volume": 1000},
				{"date": "2026-08-26", "open": 160.0, "close": null, "volume": 0},
				{"date": "2026-08-27", "open": 160.5, "close": 162.5, "volume": 1200}
			]
		}`))
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	points, err := c.StockChart(context.Background(), US, "AAPL")
	if err != nil {
		t.Fatalf("StockChart() unexpected error = %v", err)
	}
	// The null close on the holiday row is skipped.
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Date != "2026-08-25" || points[0].Close != 160 {
		t.Errorf("points[0] = %+v", points[0])
	}
	if points[1].Close != 162.5 {
		t.Errorf("points[1] = %+v", points[1])
	}
}

func TestStockChart_RejectsUnexpectedPayload(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "unknown ticker"}`))
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	if _, err := c.StockChart(context.Background(), US, "NOPE"); err == nil {
		t.Error("StockChart() accepted a payload without a data series")
	}
}

func TestFundamentalsAndNews(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fundamentals/MSFT":
			w.Write([]byte(`{"symbol": "MSFT", "marketCap": 3.1e12, "trailingPE": 35.2}`))
		case "/news/MSFT":
			w.Write([]byte(`[{"title": "MSFT ships a thing", "publisher": "Wire"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer backend.Close()

	c, _ := newTestClient(t, backend)
	f, err := c.Fundamentals(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("Fundamentals() unexpected error = %v", err)
	}
	if f.Symbol != "MSFT" || f.TrailingPE != 35.2 {
		t.Errorf("fundamentals = %+v", f)
	}
	news, err := c.News(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("News() unexpected error = %v", err)
	}
	if len(news) != 1 || news[0].Title == "" {
		t.Errorf("news = %+v", news)
	}
}
