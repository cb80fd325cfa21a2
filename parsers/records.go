package parsers

import (
	"korea-realestate/models"
)

// RecordParser turns the items of one endpoint family into records.
// Missing optional fields are left zero rather than failing the batch.
type RecordParser func(items []models.Item) []models.Record

func parseEach(items []models.Item, fn func(models.Item) models.Record) []models.Record {
	records := make([]models.Record, 0, len(items))
	for _, it := range items {
		records = append(records, fn(it))
	}
	return records
}

// residentialTrade fills the fields shared by the residential sale families.
func residentialTrade(it models.Item) models.Record {
	return models.Record{
		Dong:      normaliseText(it["umdNm"]),
		AreaSqm:   Float(it["excluUseAr"]),
		Floor:     Int(it["floor"]),
		PriceTenK: Amount(it["dealAmount"]),
		TradeDate: tradeDate(it),
		BuildYear: Int(it["buildYear"]),
		DealType:  normaliseText(it["dealingGbn"]),
	}
}

// residentialRent fills the fields shared by the residential rent families.
func residentialRent(it models.Item) models.Record {
	return models.Record{
		Dong:            normaliseText(it["umdNm"]),
		AreaSqm:         Float(it["excluUseAr"]),
		Floor:           Int(it["floor"]),
		DepositTenK:     Amount(it["deposit"]),
		MonthlyRentTenK: Amount(it["monthlyRent"]),
		ContractType:    normaliseText(it["contractType"]),
		TradeDate:       tradeDate(it),
		BuildYear:       Int(it["buildYear"]),
	}
}

func ParseAptTrade(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialTrade(it)
		r.AptName = normaliseText(it["aptNm"])
		return r
	})
}

func ParseAptRent(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialRent(it)
		r.AptName = normaliseText(it["aptNm"])
		return r
	})
}

func ParseOffiTrade(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialTrade(it)
		r.UnitName = normaliseText(it["offiNm"])
		return r
	})
}

func ParseOffiRent(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialRent(it)
		r.UnitName = normaliseText(it["offiNm"])
		return r
	})
}

func ParseVillaTrade(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialTrade(it)
		r.UnitName = normaliseText(it["mhouseNm"])
		r.HouseType = normaliseText(it["houseType"])
		return r
	})
}

func ParseVillaRent(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialRent(it)
		r.UnitName = normaliseText(it["mhouseNm"])
		r.HouseType = normaliseText(it["houseType"])
		return r
	})
}

// Single houses report total floor area and no floor.
func ParseSingleTrade(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialTrade(it)
		r.HouseType = normaliseText(it["houseType"])
		r.AreaSqm = Float(it["totalFloorAr"])
		r.Floor = 0
		return r
	})
}

func ParseSingleRent(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		r := residentialRent(it)
		r.HouseType = normaliseText(it["houseType"])
		r.AreaSqm = Float(it["totalFloorAr"])
		r.Floor = 0
		return r
	})
}

func ParseCommercialTrade(items []models.Item) []models.Record {
	return parseEach(items, func(it models.Item) models.Record {
		return models.Record{
			BuildingType: normaliseText(it["buildingType"]),
			BuildingUse:  normaliseText(it["buildingUse"]),
			Dong:         normaliseText(it["umdNm"]),
			Floor:        Int(it["floor"]),
			PriceTenK:    Amount(it["dealAmount"]),
			TradeDate:    tradeDate(it),
			BuildYear:    Int(it["buildYear"]),
			DealType:     normaliseText(it["dealingGbn"]),
			LandUse:      normaliseText(it["landUse"]),
			BuildingAr:   Float(it["buildingAr"]),
			ShareDealing: normaliseText(it["shareDealingType"]),
		}
	})
}
