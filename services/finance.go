package services

import (
	"math"

	"github.com/shopspring/decimal"

	"korea-realestate/models"
)

// Share of income assumed for living costs when none is given.
const defaultLivingCostShare = 0.4

// LoanAmortization computes the equal-installment schedule. Rounding to two
// decimals happens only on the returned values.
func LoanAmortization(in models.LoanInput) (models.LoanResult, error) {
	if in.PrincipalTenK <= 0 {
		return models.LoanResult{}, models.NewValidationError("principal must be greater than 0")
	}
	if in.Years < 1 {
		return models.LoanResult{}, models.NewValidationError("years must be at least 1")
	}
	if in.AnnualRatePct < 0 {
		return models.LoanResult{}, models.NewValidationError("annual rate must not be negative")
	}

	r := in.AnnualRatePct / 100 / 12
	n := float64(in.Years * 12)

	var monthly float64
	if r == 0 {
		monthly = in.PrincipalTenK / n
	} else {
		g := math.Pow(1+r, n)
		monthly = in.PrincipalTenK * r * g / (g - 1)
	}
	total := monthly * n

	return models.LoanResult{
		MonthlyPayment: round2(monthly),
		TotalPayment:   round2(total),
		TotalInterest:  round2(total - in.PrincipalTenK),
	}, nil
}

// CompoundGrowth is the future value of a lump sum plus a monthly annuity
// compounded monthly.
func CompoundGrowth(in models.CompoundInput) (models.CompoundResult, error) {
	if in.Years < 1 {
		return models.CompoundResult{}, models.NewValidationError("years must be at least 1")
	}
	if in.InitialTenK < 0 || in.MonthlyTenK < 0 {
		return models.CompoundResult{}, models.NewValidationError("amounts must not be negative")
	}
	if in.AnnualRatePct < 0 {
		return models.CompoundResult{}, models.NewValidationError("annual rate must not be negative")
	}

	r := in.AnnualRatePct / 100 / 12
	n := float64(in.Years * 12)

	var final float64
	if r == 0 {
		final = in.InitialTenK + in.MonthlyTenK*n
	} else {
		g := math.Pow(1+r, n)
		final = in.InitialTenK*g + in.MonthlyTenK*(g-1)/r
	}
	contributed := in.InitialTenK + in.MonthlyTenK*n

	return models.CompoundResult{
		FinalValue:       round2(final),
		TotalContributed: round2(contributed),
		TotalGain:        round2(final - contributed),
	}, nil
}

// MonthlyCashflow subtracts expenses from income. A living cost of exactly
// zero always means "use 40% of income".
func MonthlyCashflow(in models.CashflowInput) (models.CashflowResult, error) {
	if in.IncomeTenK < 0 {
		return models.CashflowResult{}, models.NewValidationError("income must not be negative")
	}

	auto := in.LivingCostTenK == 0
	living := in.LivingCostTenK
	if auto {
		living = in.IncomeTenK * defaultLivingCostShare
	}
	cashflow := in.IncomeTenK - in.LoanPaymentTenK - living - in.OtherTenK

	return models.CashflowResult{
		Cashflow:       round2(cashflow),
		LivingCostUsed: round2(living),
		AutoApplied:    auto,
	}, nil
}

// round2 rounds half away from zero at two decimals.
func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
