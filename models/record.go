package models

// Record is a normalized transaction row. Money fields are in 10,000 KRW
// (만원) units. Which fields are set depends on the endpoint family; trade
// records carry PriceTenK, rent records carry DepositTenK and MonthlyRentTenK.
type Record struct {
	AptName         string  `json:"apt_name,omitempty"`
	UnitName        string  `json:"unit_name,omitempty"`
	BuildingType    string  `json:"building_type,omitempty"`
	BuildingUse     string  `json:"building_use,omitempty"`
	HouseType       string  `json:"house_type,omitempty"`
	Dong            string  `json:"dong,omitempty"`
	AreaSqm         float64 `json:"area_sqm,omitempty"`
	Floor           int     `json:"floor,omitempty"`
	PriceTenK       *int64  `json:"price_10k,omitempty"`
	DepositTenK     *int64  `json:"deposit_10k,omitempty"`
	MonthlyRentTenK *int64  `json:"monthly_rent_10k,omitempty"`
	ContractType    string  `json:"contract_type,omitempty"`
	TradeDate       string  `json:"trade_date,omitempty"`
	BuildYear       int     `json:"build_year,omitempty"`
	DealType        string  `json:"deal_type,omitempty"`
	LandUse         string  `json:"land_use,omitempty"`
	BuildingAr      float64 `json:"building_ar,omitempty"`
	ShareDealing    string  `json:"share_dealing,omitempty"`
}

// Amount returns the value behind a money field, or zero when unset.
func Amount(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// Item is an upstream row passed through without a fixed schema
// (subscription notices, subscription statistics, auction listings).
type Item = map[string]any

// SummaryStats is implemented by TradeSummary and RentSummary.
type SummaryStats interface {
	Count() int
}

// TradeSummary aggregates sale prices.
type TradeSummary struct {
	TotalCount  int     `json:"total_count"`
	MedianPrice float64 `json:"median_price_10k"`
	MinPrice    int64   `json:"min_price_10k"`
	MaxPrice    int64   `json:"max_price_10k"`
}

func (s *TradeSummary) Count() int { return s.TotalCount }

// RentSummary aggregates deposits and monthly rents.
type RentSummary struct {
	TotalCount     int     `json:"total_count"`
	MedianDeposit  float64 `json:"median_deposit_10k"`
	MinDeposit     int64   `json:"min_deposit_10k"`
	AvgMonthlyRent float64 `json:"monthly_rent_avg_10k"`
}

func (s *RentSummary) Count() int { return s.TotalCount }

// DealResult is the success envelope of a trade or rent query.
type DealResult struct {
	TotalCount int          `json:"total_count"`
	Items      []Record     `json:"items"`
	Summary    SummaryStats `json:"summary"`
}

// SubscriptionInfoResult is the success envelope of the subscription notice list.
type SubscriptionInfoResult struct {
	TotalCount int    `json:"total_count"`
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
}

// SubscriptionStatResult is the success envelope of a subscription statistic.
type SubscriptionStatResult struct {
	StatKind   string `json:"stat_kind"`
	TotalCount int    `json:"total_count"`
	Items      []Item `json:"items"`
}

// OnbidResult is the success envelope of an auction listing query.
type OnbidResult struct {
	TotalCount int    `json:"total_count"`
	Items      []Item `json:"items"`
}
