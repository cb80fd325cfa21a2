package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"korea-realestate/models"
	"korea-realestate/utils"
)

// DealsSource is the single-month aggregation the trend fans out over.
type DealsSource interface {
	Deals(ctx context.Context, q models.Query) (*models.DealResult, error)
}

// TrendOptions tunes the fan-out. Attempts <= 1 means one call per month.
type TrendOptions struct {
	Concurrency int
	RateLimitMs int
	Attempts    int
	BaseDelay   time.Duration
}

// TrendPoint is one month of a trend: a summary or the error envelope of
// that month's call.
type TrendPoint struct {
	YearMonth  string                `json:"year_month"`
	TotalCount int                   `json:"total_count"`
	Summary    models.SummaryStats   `json:"summary,omitempty"`
	Error      *models.ErrorEnvelope `json:"error,omitempty"`
}

// TrendService runs one independent aggregation per month.
type TrendService struct {
	source DealsSource
	opts   TrendOptions
	logger *utils.Logger
}

func NewTrendService(source DealsSource, opts TrendOptions, logger *utils.Logger) *TrendService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}
	return &TrendService{source: source, opts: opts, logger: logger}
}

// Run queries every month for q's region and housing/transaction type and
// returns points in ascending month order. A month that fails keeps its
// error envelope; Run itself fails only on invalid input or when every
// month failed validation.
func (s *TrendService) Run(ctx context.Context, q models.Query, months []string) ([]TrendPoint, error) {
	if len(months) == 0 {
		return nil, models.NewValidationError("at least one month is required")
	}

	seen := utils.NewStringSet()
	var unique []string
	for _, m := range months {
		if !models.ValidYearMonth(m) {
			return nil, models.NewValidationError("year_month must be YYYYMM: %s", m)
		}
		if seen.Add(m) {
			unique = append(unique, m)
		}
	}
	sort.Strings(unique)

	probe := q
	probe.YearMonth = unique[0]
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	points := make([]TrendPoint, len(unique))
	var mu sync.Mutex
	pool := utils.NewWorkerPool(s.opts.Concurrency, s.opts.RateLimitMs)

	for i, ym := range unique {
		i, ym := i, ym
		pool.Submit(ctx, func() {
			p := s.runMonth(ctx, q, ym)
			mu.Lock()
			points[i] = p
			mu.Unlock()
		})
	}
	pool.Wait()

	failed := 0
	var firstValidation error
	for _, p := range points {
		if p.Error != nil && p.Error.Error == models.KindValidation {
			failed++
			if firstValidation == nil {
				firstValidation = &models.FetchError{Kind: p.Error.Error, Message: p.Error.Message, Code: p.Error.Code}
			}
		}
	}
	if failed == len(points) {
		return nil, firstValidation
	}

	s.logger.Info("[trend] %s %s/%s: %d months", q.RegionCode, q.Housing.Key(), q.Transaction, seen.Size())
	return points, nil
}

func (s *TrendService) runMonth(ctx context.Context, q models.Query, ym string) TrendPoint {
	q.YearMonth = ym
	point := TrendPoint{YearMonth: ym}

	retry := &utils.RetryConfig{
		MaxAttempts: s.opts.Attempts,
		BaseDelay:   s.opts.BaseDelay,
		Logger:      s.logger,
		Retryable: func(err error) bool {
			return models.AsFetchError(err).Kind == models.KindAPI && ctx.Err() == nil
		},
	}

	var res *models.DealResult
	err := retry.Do(ctx, "deals "+ym, func() error {
		var err error
		res, err = s.source.Deals(ctx, q)
		return err
	})
	if err != nil {
		env := models.AsFetchError(err).Envelope()
		point.Error = &env
		s.logger.Warn("[trend] %s failed: %s", ym, env.Message)
		return point
	}

	point.TotalCount = res.TotalCount
	point.Summary = res.Summary
	return point
}
