package models

import (
	"regexp"
	"strconv"
	"strings"
)

// HousingType is the upstream's high-level property category.
type HousingType int

const (
	Apartment HousingType = iota + 1
	Officetel
	Villa
	SingleHouse
	Commercial
)

// HousingTypes lists every supported housing type in display order.
var HousingTypes = []HousingType{Apartment, Officetel, Villa, SingleHouse, Commercial}

// Label returns the Korean display label.
func (h HousingType) Label() string {
	switch h {
	case Apartment:
		return "아파트"
	case Officetel:
		return "오피스텔"
	case Villa:
		return "연립다세대 (빌라)"
	case SingleHouse:
		return "단독/다가구"
	case Commercial:
		return "상업/업무용"
	}
	return ""
}

// Key returns the ASCII identifier used on the command line and in URLs.
func (h HousingType) Key() string {
	switch h {
	case Apartment:
		return "apartment"
	case Officetel:
		return "officetel"
	case Villa:
		return "villa"
	case SingleHouse:
		return "single"
	case Commercial:
		return "commercial"
	}
	return ""
}

func (h HousingType) String() string { return h.Label() }

// ParseHousingType accepts either the ASCII key or the Korean label.
func ParseHousingType(s string) (HousingType, error) {
	s = strings.TrimSpace(s)
	for _, h := range HousingTypes {
		if strings.EqualFold(s, h.Key()) || s == h.Label() {
			return h, nil
		}
	}
	switch s {
	case "빌라", "연립다세대":
		return Villa, nil
	case "단독", "다가구":
		return SingleHouse, nil
	case "상업", "업무용":
		return Commercial, nil
	}
	return 0, NewValidationError("Unsupported housing type: %s", s)
}

// TransactionType is trade (outright sale) or rent (deposit + monthly rent).
type TransactionType string

const (
	Trade TransactionType = "trade"
	Rent  TransactionType = "rent"
)

// Label returns the Korean display label.
func (t TransactionType) Label() string {
	if t == Rent {
		return "전월세"
	}
	return "매매"
}

func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trade", "매매":
		return Trade, nil
	case "rent", "전월세":
		return Rent, nil
	}
	return "", NewValidationError("Unsupported transaction type: %s", s)
}

const (
	DefaultMaxRows = 100
	MaxRowsLimit   = 1000
)

var (
	lawdCodeRegexp  = regexp.MustCompile(`^\d{5}$`)
	yearMonthRegexp = regexp.MustCompile(`^\d{6}$`)
	dateRegexp      = regexp.MustCompile(`^\d{8}$`)
)

// Query is one transaction lookup for a region and month.
type Query struct {
	RegionCode  string
	YearMonth   string
	Housing     HousingType
	Transaction TransactionType
	MaxRows     int
}

// Validate checks the query before dispatch and fills MaxRows defaults.
func (q *Query) Validate() error {
	if strings.TrimSpace(q.RegionCode) == "" {
		return NewValidationError("region_code is required")
	}
	if !lawdCodeRegexp.MatchString(q.RegionCode) {
		return NewValidationError("region_code must be a 5-digit administrative code: %s", q.RegionCode)
	}
	if !ValidYearMonth(q.YearMonth) {
		return NewValidationError("year_month must be YYYYMM: %s", q.YearMonth)
	}
	if q.Housing.Key() == "" {
		return NewValidationError("housing_type is required")
	}
	if q.Transaction != Trade && q.Transaction != Rent {
		return NewValidationError("transaction_type must be trade or rent")
	}
	if q.MaxRows <= 0 {
		q.MaxRows = DefaultMaxRows
	}
	if q.MaxRows > MaxRowsLimit {
		q.MaxRows = MaxRowsLimit
	}
	return nil
}

// ValidYearMonth reports whether s is a well-formed YYYYMM string.
func ValidYearMonth(s string) bool {
	if !yearMonthRegexp.MatchString(s) {
		return false
	}
	month, _ := strconv.Atoi(s[4:])
	return month >= 1 && month <= 12
}

// ValidDate reports whether s is a well-formed yyyyMMdd string.
func ValidDate(s string) bool {
	if !dateRegexp.MatchString(s) {
		return false
	}
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:])
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// OnbidQuery filters public-auction listings. Empty strings are omitted.
type OnbidQuery struct {
	PageNo        int
	NumOfRows     int
	Sido          string
	Sigungu       string
	OpenDateStart string
	OpenDateEnd   string
	ItemName      string
}

// Validate fills paging defaults and checks the date filters.
func (q *OnbidQuery) Validate() error {
	if q.PageNo <= 0 {
		q.PageNo = 1
	}
	if q.NumOfRows <= 0 {
		q.NumOfRows = 20
	}
	if q.NumOfRows > MaxRowsLimit {
		q.NumOfRows = MaxRowsLimit
	}
	if q.OpenDateStart != "" && !ValidDate(q.OpenDateStart) {
		return NewValidationError("opening date start must be yyyyMMdd: %s", q.OpenDateStart)
	}
	if q.OpenDateEnd != "" && !ValidDate(q.OpenDateEnd) {
		return NewValidationError("opening date end must be yyyyMMdd: %s", q.OpenDateEnd)
	}
	if q.OpenDateStart != "" && q.OpenDateEnd != "" && q.OpenDateStart > q.OpenDateEnd {
		return NewValidationError("opening date range is reversed: %s > %s", q.OpenDateStart, q.OpenDateEnd)
	}
	return nil
}
