package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"korea-realestate/models"
	"korea-realestate/utils"
)

type dealFlags struct {
	region      string
	code        string
	month       string
	housing     string
	transaction string
	rows        int
}

func (f *dealFlags) register(cmd *cobra.Command, withMonth bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.region, "region", "r", "", "place name, e.g. 마포구 or \"서울 강남구\"")
	fl.StringVar(&f.code, "code", "", "5-digit region code (overrides --region)")
	if withMonth {
		fl.StringVarP(&f.month, "month", "m", "", "year-month YYYYMM (default: current month)")
	}
	fl.StringVarP(&f.housing, "housing", "t", "apartment", "apartment | officetel | villa | single | commercial")
	fl.StringVarP(&f.transaction, "tx", "x", "trade", "trade | rent")
	fl.IntVar(&f.rows, "rows", models.DefaultMaxRows, "maximum rows to fetch")
}

// query resolves the region and parses the enum flags.
func (f *dealFlags) query() (models.Query, models.Region, error) {
	q := models.Query{
		RegionCode: strings.TrimSpace(f.code),
		YearMonth:  f.month,
		MaxRows:    f.rows,
	}
	if q.YearMonth == "" {
		q.YearMonth = time.Now().Format("200601")
	}

	var reg models.Region
	if q.RegionCode == "" {
		if f.region == "" {
			return q, reg, models.NewValidationError("--region or --code is required")
		}
		r, err := current.agg.ResolveUniqueRegion(f.region)
		if err != nil {
			return q, reg, err
		}
		reg = r
		q.RegionCode = r.LawdCode()
	} else {
		reg = models.Region{Name: q.RegionCode, Code: q.RegionCode}
	}

	h, err := models.ParseHousingType(f.housing)
	if err != nil {
		return q, reg, err
	}
	q.Housing = h

	tx, err := models.ParseTransactionType(f.transaction)
	if err != nil {
		return q, reg, err
	}
	q.Transaction = tx
	return q, reg, nil
}

var dealsFlags dealFlags

var dealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "List one month of trade or rent transactions for a region",
	Example: `  realestate deals -r 마포구 -m 202501
  realestate deals -r "서울 강남구" -t officetel -x rent --csv out/gangnam.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, reg, err := dealsFlags.query()
		if err != nil {
			return err
		}
		res, err := current.agg.Deals(cmd.Context(), q)
		if err != nil {
			return err
		}
		if err := exportRecords(res.Items); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(res)
			return nil
		}

		printSection(fmt.Sprintf("%s · %s %s · %s",
			reg.Name, q.Housing.Label(), q.Transaction.Label(), utils.MonthLabel(q.YearMonth)))
		printSummary(res.Summary)
		printTable(models.RecordTable(res.Items))
		if res.TotalCount > len(res.Items) {
			fmt.Printf("\n  %s 중 %s 표시\n", utils.FormatCount(res.TotalCount), utils.FormatCount(len(res.Items)))
		}
		return nil
	},
}

func init() {
	dealsFlags.register(dealsCmd, true)
	rootCmd.AddCommand(dealsCmd)
}
