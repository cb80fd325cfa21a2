package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"korea-realestate/auth"
	"korea-realestate/models"
	"korea-realestate/parsers"
	"korea-realestate/region"
	"korea-realestate/registry"
	"korea-realestate/utils"
)

// Fetcher performs one authenticated upstream GET.
type Fetcher interface {
	Fetch(ctx context.Context, base string, params url.Values, cred auth.Credential) (any, error)
}

const (
	defaultSubscriptionPerPage = 10
	maxSubscriptionPerPage     = 1000
)

// Aggregator runs one upstream call per operation and returns either a
// success envelope or exactly one *models.FetchError.
type Aggregator struct {
	registry *registry.Registry
	auth     *auth.Resolver
	fetcher  Fetcher
	regions  *region.Resolver
	logger   *utils.Logger
}

func NewAggregator(reg *registry.Registry, authResolver *auth.Resolver, fetcher Fetcher, regions *region.Resolver, logger *utils.Logger) *Aggregator {
	return &Aggregator{
		registry: reg,
		auth:     authResolver,
		fetcher:  fetcher,
		regions:  regions,
		logger:   logger,
	}
}

// Registry exposes the endpoint table, e.g. to hide the rent option.
func (a *Aggregator) Registry() *registry.Registry {
	return a.registry
}

// ResolveRegion returns every region matching text.
func (a *Aggregator) ResolveRegion(text string) (models.RegionMatches, error) {
	return a.regions.Resolve(text)
}

// ResolveUniqueRegion resolves text and requires a single match. Several
// matches are reported as a validation_error listing the candidates.
func (a *Aggregator) ResolveUniqueRegion(text string) (models.Region, error) {
	m, err := a.regions.Resolve(text)
	if err != nil {
		return models.Region{}, err
	}
	if r, ok := m.Unique(); ok {
		return r, nil
	}

	names := make([]string, 0, len(m.Matches))
	for _, r := range m.Matches {
		names = append(names, r.Name)
	}
	const shown = 8
	if len(names) > shown {
		names = append(names[:shown], "...")
	}
	return models.Region{}, models.NewValidationError("%q matches %d regions: %s",
		strings.TrimSpace(text), len(m.Matches), strings.Join(names, ", "))
}

// Deals fetches one month of trade or rent records for a region.
func (a *Aggregator) Deals(ctx context.Context, q models.Query) (*models.DealResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	ep, err := a.registry.Lookup(q.Housing, q.Transaction)
	if err != nil {
		return nil, err
	}
	cred, err := a.auth.Resolve(auth.DataGoKr)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("LAWD_CD", q.RegionCode)
	params.Set("DEAL_YMD", q.YearMonth)
	params.Set("numOfRows", strconv.Itoa(q.MaxRows))
	params.Set("pageNo", "1")

	payload, err := a.fetcher.Fetch(ctx, ep.URL, params, cred)
	if err != nil {
		return nil, models.AsFetchError(err)
	}
	page, err := parsers.ExtractListItems(payload)
	if err != nil {
		return nil, err
	}

	records := ep.Parse(page.Items)
	a.logger.Info("[aggregator] %s %s %s/%s: %d records",
		q.RegionCode, q.YearMonth, q.Housing.Key(), q.Transaction, len(records))

	return &models.DealResult{
		TotalCount: totalCount(page.TotalCount, len(records)),
		Items:      records,
		Summary:    Summarize(records, q.Transaction),
	}, nil
}

// SubscriptionInfo lists APT subscription notices.
func (a *Aggregator) SubscriptionInfo(ctx context.Context, page, perPage int) (*models.SubscriptionInfoResult, error) {
	page, perPage = subscriptionPaging(page, perPage)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	params.Set("returnType", "JSON")

	res, err := a.fetchOdcloud(ctx, a.registry.SubscriptionInfoURL(), params)
	if err != nil {
		return nil, err
	}
	a.logger.Info("[aggregator] subscription notices page %d: %d items", page, len(res.Items))

	return &models.SubscriptionInfoResult{
		TotalCount: totalCount(res.TotalCount, len(res.Items)),
		Items:      res.Items,
		Page:       orDefault(res.Page, page),
		PerPage:    orDefault(res.PerPage, perPage),
	}, nil
}

// SubscriptionStats fetches one subscription statistic, optionally filtered
// to a single YYYYMM month.
func (a *Aggregator) SubscriptionStats(ctx context.Context, kind, statYearMonth string, page, perPage int) (*models.SubscriptionStatResult, error) {
	endpoint, err := a.registry.StatURL(kind)
	if err != nil {
		return nil, err
	}
	if statYearMonth != "" && !models.ValidYearMonth(statYearMonth) {
		return nil, models.NewValidationError("stat year_month must be YYYYMM: %s", statYearMonth)
	}
	page, perPage = subscriptionPaging(page, perPage)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	params.Set("returnType", "JSON")
	if statYearMonth != "" {
		params.Set("cond[STAT_DE::EQ]", statYearMonth)
	}

	res, err := a.fetchOdcloud(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	a.logger.Info("[aggregator] subscription stat %s: %d items", kind, len(res.Items))

	return &models.SubscriptionStatResult{
		StatKind:   kind,
		TotalCount: totalCount(res.TotalCount, len(res.Items)),
		Items:      res.Items,
	}, nil
}

func (a *Aggregator) fetchOdcloud(ctx context.Context, endpoint string, params url.Values) (parsers.OdcloudPage, error) {
	cred, err := a.auth.Resolve(auth.Odcloud)
	if err != nil {
		return parsers.OdcloudPage{}, err
	}
	payload, err := a.fetcher.Fetch(ctx, endpoint, params, cred)
	if err != nil {
		return parsers.OdcloudPage{}, models.AsFetchError(err)
	}
	return parsers.ParseOdcloudPage(payload)
}

// OnbidItems lists public-auction bid results.
func (a *Aggregator) OnbidItems(ctx context.Context, q models.OnbidQuery) (*models.OnbidResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	cred, err := a.auth.Resolve(auth.Onbid)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(q.PageNo))
	params.Set("numOfRows", strconv.Itoa(q.NumOfRows))
	params.Set("resultType", "json")
	setIfPresent(params, "lctnSdnm", q.Sido)
	setIfPresent(params, "lctnSggnm", q.Sigungu)
	setIfPresent(params, "opbdDtStart", q.OpenDateStart)
	setIfPresent(params, "opbdDtEnd", q.OpenDateEnd)
	setIfPresent(params, "onbidCltrNm", q.ItemName)

	payload, err := a.fetcher.Fetch(ctx, a.registry.OnbidURL(), params, cred)
	if err != nil {
		return nil, models.AsFetchError(err)
	}
	page, err := parsers.ExtractOnbid(payload)
	if err != nil {
		return nil, err
	}
	a.logger.Info("[aggregator] onbid page %d: %d items", q.PageNo, len(page.Items))

	return &models.OnbidResult{
		TotalCount: totalCount(page.TotalCount, len(page.Items)),
		Items:      page.Items,
	}, nil
}

func setIfPresent(params url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		params.Set(key, v)
	}
}

func subscriptionPaging(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultSubscriptionPerPage
	}
	if perPage > maxSubscriptionPerPage {
		perPage = maxSubscriptionPerPage
	}
	return page, perPage
}

// totalCount prefers the upstream count, which covers rows beyond the page.
func totalCount(upstream, returned int) int {
	if upstream > 0 {
		return upstream
	}
	return returned
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
