package cmd

import (
	"github.com/spf13/cobra"

	"korea-realestate/models"
	"korea-realestate/services"
	"korea-realestate/utils"
)

var (
	loanIn     models.LoanInput
	compoundIn models.CompoundInput
	cashflowIn models.CashflowInput
)

var loanCmd = &cobra.Command{
	Use:     "loan",
	Short:   "Equal-installment mortgage payment (amounts in 만원)",
	Example: `  realestate loan --principal 30000 --rate 3.5 --years 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := services.LoanAmortization(loanIn)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(res)
			return nil
		}
		printSection("대출 상환 계산")
		printMetric("월 상환액", utils.FormatPrice(res.MonthlyPayment))
		printMetric("총 상환액", utils.FormatPrice(res.TotalPayment))
		printMetric("총 이자", utils.FormatPrice(res.TotalInterest))
		return nil
	},
}

var compoundCmd = &cobra.Command{
	Use:     "compound",
	Short:   "Future value of a lump sum plus monthly savings (amounts in 만원)",
	Example: `  realestate compound --initial 1000 --monthly 100 --rate 4 --years 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := services.CompoundGrowth(compoundIn)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(res)
			return nil
		}
		printSection("복리 계산")
		printMetric("최종 금액", utils.FormatPrice(res.FinalValue))
		printMetric("총 납입액", utils.FormatPrice(res.TotalContributed))
		printMetric("수익", utils.FormatPrice(res.TotalGain))
		return nil
	},
}

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Monthly cash flow after loan and living costs (amounts in 만원)",
	Long: `Monthly cash flow after loan and living costs (amounts in 만원).
A living cost of 0 means 40% of income.`,
	Example: `  realestate cashflow --income 500 --loan 135 --other 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := services.MonthlyCashflow(cashflowIn)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(res)
			return nil
		}
		printSection("월 현금흐름")
		living := utils.FormatPrice(res.LivingCostUsed)
		if res.AutoApplied {
			living += " (소득의 40% 자동 적용)"
		}
		printMetric("생활비", living)
		cashflow := utils.FormatPrice(res.Cashflow)
		if res.Cashflow < 0 {
			cashflow = "-" + utils.FormatPrice(-res.Cashflow)
		}
		printMetric("월 잉여자금", cashflow)
		return nil
	},
}

func init() {
	lf := loanCmd.Flags()
	lf.Float64Var(&loanIn.PrincipalTenK, "principal", 30000, "loan principal in 만원")
	lf.Float64Var(&loanIn.AnnualRatePct, "rate", 3.5, "annual interest rate in %")
	lf.IntVar(&loanIn.Years, "years", 30, "loan term in years")

	cf := compoundCmd.Flags()
	cf.Float64Var(&compoundIn.InitialTenK, "initial", 1000, "initial deposit in 만원")
	cf.Float64Var(&compoundIn.MonthlyTenK, "monthly", 100, "monthly contribution in 만원")
	cf.Float64Var(&compoundIn.AnnualRatePct, "rate", 4, "annual return in %")
	cf.IntVar(&compoundIn.Years, "years", 10, "years of saving")

	ff := cashflowCmd.Flags()
	ff.Float64Var(&cashflowIn.IncomeTenK, "income", 500, "monthly income in 만원")
	ff.Float64Var(&cashflowIn.LoanPaymentTenK, "loan", 0, "monthly loan payment in 만원")
	ff.Float64Var(&cashflowIn.LivingCostTenK, "living", 0, "monthly living cost in 만원 (0 = 40% of income)")
	ff.Float64Var(&cashflowIn.OtherTenK, "other", 0, "other monthly expenses in 만원")

	rootCmd.AddCommand(loanCmd, compoundCmd, cashflowCmd)
}
