package models

// Calculator inputs and results. Amounts are in 10,000 KRW units.

type LoanInput struct {
	PrincipalTenK float64 `json:"principal_10k"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	Years         int     `json:"years"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment_10k"`
	TotalPayment   float64 `json:"total_payment_10k"`
	TotalInterest  float64 `json:"total_interest_10k"`
}

type CompoundInput struct {
	InitialTenK   float64 `json:"initial_10k"`
	MonthlyTenK   float64 `json:"monthly_10k"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	Years         int     `json:"years"`
}

type CompoundResult struct {
	FinalValue       float64 `json:"final_value_10k"`
	TotalContributed float64 `json:"total_contributed_10k"`
	TotalGain        float64 `json:"total_gain_10k"`
}

// CashflowInput treats LivingCostTenK == 0 as "use the default share of income".
type CashflowInput struct {
	IncomeTenK      float64 `json:"income_10k"`
	LoanPaymentTenK float64 `json:"loan_10k"`
	LivingCostTenK  float64 `json:"living_10k"`
	OtherTenK       float64 `json:"other_10k"`
}

type CashflowResult struct {
	Cashflow       float64 `json:"cashflow_10k"`
	LivingCostUsed float64 `json:"living_cost_10k"`
	AutoApplied    bool    `json:"auto_applied"`
}
