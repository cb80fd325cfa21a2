package services

import (
	"errors"
	"math"
	"testing"

	"korea-realestate/models"
)

func TestLoanAmortization(t *testing.T) {
	got, err := LoanAmortization(models.LoanInput{PrincipalTenK: 30000, AnnualRatePct: 3.5, Years: 30})
	if err != nil {
		t.Fatal(err)
	}
	if got.MonthlyPayment <= 125 || got.MonthlyPayment >= 140 {
		t.Errorf("MonthlyPayment = %.2f; want between 125 and 140", got.MonthlyPayment)
	}
	if got.MonthlyPayment != 134.71 {
		t.Errorf("MonthlyPayment = %.2f; want 134.71", got.MonthlyPayment)
	}
	if got.TotalInterest <= 0 || math.Abs(got.TotalPayment-got.TotalInterest-30000) > 0.02 {
		t.Errorf("total %.2f / interest %.2f inconsistent", got.TotalPayment, got.TotalInterest)
	}
}

func TestLoanAmortizationZeroRate(t *testing.T) {
	tests := []struct {
		principal float64
		years     int
	}{
		{12000, 10},
		{30000, 30},
		{1000, 3},
	}

	for _, tt := range tests {
		got, err := LoanAmortization(models.LoanInput{PrincipalTenK: tt.principal, Years: tt.years})
		if err != nil {
			t.Fatal(err)
		}
		want := round2(tt.principal / float64(tt.years*12))
		if got.MonthlyPayment != want {
			t.Errorf("LoanAmortization(%v, 0, %d).MonthlyPayment = %v; want %v", tt.principal, tt.years, got.MonthlyPayment, want)
		}
		if got.TotalInterest != 0 {
			t.Errorf("zero-rate interest = %v", got.TotalInterest)
		}
	}
}

func TestLoanAmortizationValidation(t *testing.T) {
	inputs := []models.LoanInput{
		{PrincipalTenK: 0, AnnualRatePct: 3, Years: 10},
		{PrincipalTenK: 1000, AnnualRatePct: 3, Years: 0},
		{PrincipalTenK: 1000, AnnualRatePct: -1, Years: 10},
	}
	for _, in := range inputs {
		_, err := LoanAmortization(in)
		var fe *models.FetchError
		if !errors.As(err, &fe) || fe.Kind != models.KindValidation {
			t.Errorf("LoanAmortization(%+v) = %v; want validation_error", in, err)
		}
	}
}

func TestCompoundGrowth(t *testing.T) {
	got, err := CompoundGrowth(models.CompoundInput{InitialTenK: 5000, Years: 7})
	if err != nil {
		t.Fatal(err)
	}
	if got.FinalValue != 5000 || got.TotalGain != 0 {
		t.Errorf("no-growth result = %+v; want final 5000", got)
	}

	got, err = CompoundGrowth(models.CompoundInput{InitialTenK: 1000, MonthlyTenK: 50, Years: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got.FinalValue != 2200 || got.TotalContributed != 2200 {
		t.Errorf("zero-rate linear sum = %+v; want 2200", got)
	}

	got, err = CompoundGrowth(models.CompoundInput{InitialTenK: 1000, MonthlyTenK: 100, AnnualRatePct: 5, Years: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalContributed != 13000 || got.FinalValue <= 13000 {
		t.Errorf("compound result = %+v", got)
	}
	if got.TotalGain != round2(got.FinalValue-got.TotalContributed) {
		t.Errorf("gain %v != final - contributed", got.TotalGain)
	}

	if _, err := CompoundGrowth(models.CompoundInput{InitialTenK: 1000}); err == nil {
		t.Error("expected validation error for zero years")
	}
}

func TestMonthlyCashflow(t *testing.T) {
	for _, income := range []float64{0, 500, 333.33, 1234.5} {
		got, err := MonthlyCashflow(models.CashflowInput{IncomeTenK: income, LoanPaymentTenK: 100, OtherTenK: 20})
		if err != nil {
			t.Fatal(err)
		}
		if !got.AutoApplied {
			t.Errorf("income %v: AutoApplied = false", income)
		}
		if want := round2(income * 0.4); got.LivingCostUsed != want {
			t.Errorf("income %v: LivingCostUsed = %v; want %v", income, got.LivingCostUsed, want)
		}
	}

	got, err := MonthlyCashflow(models.CashflowInput{IncomeTenK: 500, LoanPaymentTenK: 150, LivingCostTenK: 120, OtherTenK: 30})
	if err != nil {
		t.Fatal(err)
	}
	want := models.CashflowResult{Cashflow: 200, LivingCostUsed: 120, AutoApplied: false}
	if got != want {
		t.Errorf("MonthlyCashflow = %+v; want %+v", got, want)
	}

	if _, err := MonthlyCashflow(models.CashflowInput{IncomeTenK: -1}); err == nil {
		t.Error("expected validation error for negative income")
	}
}
