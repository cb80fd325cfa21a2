package services

import (
	"testing"

	"korea-realestate/models"
)

func price(n int64) *int64 { return &n }

func tradeRecords(prices ...int64) []models.Record {
	out := make([]models.Record, 0, len(prices))
	for _, p := range prices {
		out = append(out, models.Record{PriceTenK: price(p)})
	}
	return out
}

func TestSummarizeTrade(t *testing.T) {
	tests := []struct {
		name    string
		records []models.Record
		want    models.TradeSummary
	}{
		{"odd", tradeRecords(61000, 45000, 52000), models.TradeSummary{TotalCount: 3, MedianPrice: 52000, MinPrice: 45000, MaxPrice: 61000}},
		{"even", tradeRecords(10, 40, 20, 30), models.TradeSummary{TotalCount: 4, MedianPrice: 25, MinPrice: 10, MaxPrice: 40}},
		{"skips unpriced", append(tradeRecords(100), models.Record{}), models.TradeSummary{TotalCount: 2, MedianPrice: 100, MinPrice: 100, MaxPrice: 100}},
		{"empty", nil, models.TradeSummary{}},
	}

	for _, tt := range tests {
		got, ok := Summarize(tt.records, models.Trade).(*models.TradeSummary)
		if !ok {
			t.Fatalf("%s: trade summary has wrong type", tt.name)
		}
		if *got != tt.want {
			t.Errorf("%s: Summarize = %+v; want %+v", tt.name, *got, tt.want)
		}
	}
}

func TestSummarizeRent(t *testing.T) {
	records := []models.Record{
		{DepositTenK: price(30000), MonthlyRentTenK: price(0)},
		{DepositTenK: price(1000), MonthlyRentTenK: price(50)},
		{DepositTenK: price(5000), MonthlyRentTenK: price(75)},
	}

	got, ok := Summarize(records, models.Rent).(*models.RentSummary)
	if !ok {
		t.Fatal("rent summary has wrong type")
	}
	want := models.RentSummary{TotalCount: 3, MedianDeposit: 5000, MinDeposit: 1000, AvgMonthlyRent: 41.67}
	if *got != want {
		t.Errorf("Summarize = %+v; want %+v", *got, want)
	}

	empty := Summarize(nil, models.Rent).(*models.RentSummary)
	if *empty != (models.RentSummary{}) {
		t.Errorf("empty rent summary = %+v", *empty)
	}
}

func TestSummarizeRentAveragesReportedRents(t *testing.T) {
	records := []models.Record{
		{DepositTenK: price(20000), MonthlyRentTenK: price(0)},
		{DepositTenK: price(2000), MonthlyRentTenK: price(100)},
		{DepositTenK: price(3000)},
	}

	got := Summarize(records, models.Rent).(*models.RentSummary)
	if got.AvgMonthlyRent != 50 {
		t.Errorf("AvgMonthlyRent = %v; want 50", got.AvgMonthlyRent)
	}
}
