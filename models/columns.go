package models

import (
	"strconv"
)

// Column pairs a record field key with its Korean display label.
type Column struct {
	Key   string
	Label string
}

// RecordColumns is the display order of record fields.
var RecordColumns = []Column{
	{"apt_name", "단지명"},
	{"unit_name", "단지명"},
	{"building_type", "건물유형"},
	{"building_use", "건물용도"},
	{"house_type", "주택유형"},
	{"dong", "동"},
	{"area_sqm", "면적(㎡)"},
	{"floor", "층"},
	{"price_10k", "가격(만원)"},
	{"deposit_10k", "보증금(만원)"},
	{"monthly_rent_10k", "월세(만원)"},
	{"contract_type", "계약유형"},
	{"trade_date", "거래일"},
	{"build_year", "건축년도"},
	{"deal_type", "거래유형"},
	{"land_use", "용도지역"},
	{"building_ar", "건물면적"},
	{"share_dealing", "지분거래"},
}

// Field returns the display value of the column key, or "" when unset.
func (r Record) Field(key string) string {
	switch key {
	case "apt_name":
		return r.AptName
	case "unit_name":
		return r.UnitName
	case "building_type":
		return r.BuildingType
	case "building_use":
		return r.BuildingUse
	case "house_type":
		return r.HouseType
	case "dong":
		return r.Dong
	case "area_sqm":
		return formatFloat(r.AreaSqm)
	case "floor":
		return formatInt(r.Floor)
	case "price_10k":
		return formatAmount(r.PriceTenK)
	case "deposit_10k":
		return formatAmount(r.DepositTenK)
	case "monthly_rent_10k":
		return formatAmount(r.MonthlyRentTenK)
	case "contract_type":
		return r.ContractType
	case "trade_date":
		return r.TradeDate
	case "build_year":
		return formatInt(r.BuildYear)
	case "deal_type":
		return r.DealType
	case "land_use":
		return r.LandUse
	case "building_ar":
		return formatFloat(r.BuildingAr)
	case "share_dealing":
		return r.ShareDealing
	}
	return ""
}

// RecordTable flattens records into labeled columns, keeping only columns
// that carry a value in at least one record.
func RecordTable(records []Record) (headers []string, rows [][]string) {
	var cols []Column
	for _, c := range RecordColumns {
		for _, r := range records {
			if r.Field(c.Key) != "" {
				cols = append(cols, c)
				break
			}
		}
	}

	for _, c := range cols {
		headers = append(headers, c.Label)
	}
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = r.Field(c.Key)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatAmount(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}
