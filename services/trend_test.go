package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"korea-realestate/models"
	"korea-realestate/utils"
)

type fakeDeals struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

func (f *fakeDeals) Deals(ctx context.Context, q models.Query) (*models.DealResult, error) {
	f.mu.Lock()
	f.calls[q.YearMonth]++
	n := f.calls[q.YearMonth]
	err := f.fail[q.YearMonth]
	f.mu.Unlock()

	// Transient errors clear after the first attempt.
	if err != nil && (models.AsFetchError(err).Kind != models.KindAPI || n == 1) {
		return nil, err
	}
	records := tradeRecords(100, 200, 300)
	return &models.DealResult{TotalCount: len(records), Items: records, Summary: Summarize(records, q.Transaction)}, nil
}

func trendQuery() models.Query {
	return models.Query{RegionCode: "11440", Housing: models.Apartment, Transaction: models.Trade}
}

func TestTrendOrdersAndDedupes(t *testing.T) {
	src := &fakeDeals{calls: map[string]int{}, fail: map[string]error{}}
	svc := NewTrendService(src, TrendOptions{Concurrency: 3}, utils.NewDiscardLogger())

	points, err := svc.Run(context.Background(), trendQuery(), []string{"202503", "202501", "202502", "202501"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"202501", "202502", "202503"}
	if len(points) != len(want) {
		t.Fatalf("got %d points; want %d", len(points), len(want))
	}
	for i, p := range points {
		if p.YearMonth != want[i] {
			t.Errorf("point %d = %s; want %s", i, p.YearMonth, want[i])
		}
		if p.Error != nil || p.Summary == nil || p.TotalCount != 3 {
			t.Errorf("point %s = %+v", p.YearMonth, p)
		}
	}
	if src.calls["202501"] != 1 {
		t.Errorf("duplicate month fetched %d times", src.calls["202501"])
	}
}

func TestTrendKeepsPerMonthErrors(t *testing.T) {
	src := &fakeDeals{
		calls: map[string]int{},
		fail:  map[string]error{"202502": models.NewParseError("bad payload")},
	}
	svc := NewTrendService(src, TrendOptions{Concurrency: 2, Attempts: 3, BaseDelay: time.Millisecond}, utils.NewDiscardLogger())

	points, err := svc.Run(context.Background(), trendQuery(), []string{"202501", "202502"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if points[1].Error == nil || points[1].Error.Error != models.KindParse {
		t.Errorf("failed month = %+v", points[1])
	}
	if src.calls["202502"] != 1 {
		t.Errorf("parse_error retried %d times", src.calls["202502"])
	}
}

func TestTrendRetriesAPIErrors(t *testing.T) {
	src := &fakeDeals{
		calls: map[string]int{},
		fail:  map[string]error{"202501": models.NewAPIError("500", "HTTP 500")},
	}
	svc := NewTrendService(src, TrendOptions{Attempts: 2, BaseDelay: time.Millisecond}, utils.NewDiscardLogger())

	points, err := svc.Run(context.Background(), trendQuery(), []string{"202501"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if points[0].Error != nil {
		t.Errorf("expected recovery on second attempt, got %+v", points[0].Error)
	}
	if src.calls["202501"] != 2 {
		t.Errorf("calls = %d; want 2", src.calls["202501"])
	}
}

func TestTrendValidation(t *testing.T) {
	svc := NewTrendService(&fakeDeals{calls: map[string]int{}}, TrendOptions{}, utils.NewDiscardLogger())

	if _, err := svc.Run(context.Background(), trendQuery(), nil); kindOf(err) != models.KindValidation {
		t.Errorf("no months: %v", err)
	}
	if _, err := svc.Run(context.Background(), trendQuery(), []string{"2025"}); kindOf(err) != models.KindValidation {
		t.Errorf("bad month: %v", err)
	}
	q := trendQuery()
	q.RegionCode = ""
	if _, err := svc.Run(context.Background(), q, []string{"202501"}); kindOf(err) != models.KindValidation {
		t.Errorf("missing region: %v", err)
	}
}

func TestTrendCancelStopsBackoff(t *testing.T) {
	src := &fakeDeals{calls: map[string]int{}, fail: map[string]error{
		"202501": models.NewAPIError("22", "rate limited"),
	}}
	svc := NewTrendService(src, TrendOptions{Concurrency: 1, Attempts: 3, BaseDelay: time.Hour}, utils.NewDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	done := make(chan []TrendPoint, 1)
	go func() {
		points, _ := svc.Run(ctx, trendQuery(), []string{"202501"})
		done <- points
	}()

	select {
	case points := <-done:
		if len(points) != 1 || points[0].Error == nil || points[0].Error.Error != models.KindAPI {
			t.Errorf("points = %+v; want one api_error point", points)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept backing off after cancellation")
	}
}
