package services

import (
	"sort"

	"korea-realestate/models"
)

// Summarize derives display statistics from normalized records. Empty input
// yields a zero-valued summary of the right shape, never an error.
func Summarize(records []models.Record, tx models.TransactionType) models.SummaryStats {
	if tx == models.Rent {
		return summarizeRent(records)
	}
	return summarizeTrade(records)
}

func summarizeTrade(records []models.Record) *models.TradeSummary {
	s := &models.TradeSummary{TotalCount: len(records)}

	// Price stats (only records with price > 0)
	var prices []int64
	for _, r := range records {
		if p := models.Amount(r.PriceTenK); p > 0 {
			prices = append(prices, p)
		}
	}
	if len(prices) == 0 {
		return s
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	s.MedianPrice = median(prices)
	s.MinPrice = prices[0]
	s.MaxPrice = prices[len(prices)-1]
	return s
}

func summarizeRent(records []models.Record) *models.RentSummary {
	s := &models.RentSummary{TotalCount: len(records)}

	var deposits []int64
	var rentTotal int64
	var rentCount int
	for _, r := range records {
		if r.DepositTenK != nil {
			deposits = append(deposits, *r.DepositTenK)
		}
		if r.MonthlyRentTenK != nil {
			rentTotal += *r.MonthlyRentTenK
			rentCount++
		}
	}

	if len(deposits) > 0 {
		sort.Slice(deposits, func(i, j int) bool { return deposits[i] < deposits[j] })
		s.MedianDeposit = median(deposits)
		s.MinDeposit = deposits[0]
	}
	if rentCount > 0 {
		s.AvgMonthlyRent = round2(float64(rentTotal) / float64(rentCount))
	}
	return s
}

// median expects sorted input.
func median(sorted []int64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
