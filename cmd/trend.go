package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"korea-realestate/models"
	"korea-realestate/utils"
)

var (
	trendFlags  dealFlags
	trendMonths int
)

var trendCmd = &cobra.Command{
	Use:     "trend",
	Short:   "Summarize the last N months of transactions for a region",
	Example: `  realestate trend -r 마포구 --months 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendMonths < 1 || trendMonths > 36 {
			return models.NewValidationError("--months must be between 1 and 36")
		}
		q, reg, err := trendFlags.query()
		if err != nil {
			return err
		}

		points, err := current.trend.Run(cmd.Context(), q, utils.RecentMonths(time.Now(), trendMonths))
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(map[string]any{"points": points})
			return nil
		}

		printSection(fmt.Sprintf("%s · %s %s · 최근 %d개월", reg.Name, q.Housing.Label(), q.Transaction.Label(), trendMonths))

		var headers []string
		if q.Transaction == models.Rent {
			headers = []string{"월", "건수", "중위 보증금", "최저 보증금", "평균 월세", "비고"}
		} else {
			headers = []string{"월", "건수", "중위가", "최저가", "최고가", "비고"}
		}
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			row := []string{utils.MonthLabel(p.YearMonth), "", "", "", "", ""}
			switch s := p.Summary.(type) {
			case *models.TradeSummary:
				row[1] = utils.FormatCount(s.TotalCount)
				row[2] = utils.FormatPrice(s.MedianPrice)
				row[3] = utils.FormatPrice(float64(s.MinPrice))
				row[4] = utils.FormatPrice(float64(s.MaxPrice))
			case *models.RentSummary:
				row[1] = utils.FormatCount(s.TotalCount)
				row[2] = utils.FormatPrice(s.MedianDeposit)
				row[3] = utils.FormatPrice(float64(s.MinDeposit))
				row[4] = utils.FormatPrice(s.AvgMonthlyRent)
			}
			if p.Error != nil {
				row[5] = p.Error.Error + ": " + truncate(p.Error.Message, 40)
			}
			rows = append(rows, row)
		}
		printTable(headers, rows)
		return nil
	},
}

func init() {
	trendFlags.register(trendCmd, false)
	trendCmd.Flags().IntVar(&trendMonths, "months", 12, "number of months ending with the current one")
	rootCmd.AddCommand(trendCmd)
}
