package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"korea-realestate/models"
	"korea-realestate/utils"
)

var onbidQuery models.OnbidQuery

var onbidCmd = &cobra.Command{
	Use:     "onbid",
	Short:   "List public-auction (온비드) bid results",
	Example: `  realestate onbid --sido 서울특별시 --sigungu 강남구 --start 20250101 --end 20250131`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := current.agg.OnbidItems(cmd.Context(), onbidQuery)
		if err != nil {
			return err
		}
		if err := exportItems(res.Items); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(res)
			return nil
		}

		printSection(fmt.Sprintf("온비드 입찰 결과 (총 %s)", utils.FormatCount(res.TotalCount)))
		printTable(itemTable(res.Items, nil))
		return nil
	},
}

func init() {
	fl := onbidCmd.Flags()
	fl.IntVar(&onbidQuery.PageNo, "page", 1, "page number")
	fl.IntVar(&onbidQuery.NumOfRows, "rows", 20, "rows per page")
	fl.StringVar(&onbidQuery.Sido, "sido", "", "province, e.g. 서울특별시")
	fl.StringVar(&onbidQuery.Sigungu, "sigungu", "", "city or district, e.g. 강남구")
	fl.StringVar(&onbidQuery.OpenDateStart, "start", "", "opening date from (yyyyMMdd)")
	fl.StringVar(&onbidQuery.OpenDateEnd, "end", "", "opening date to (yyyyMMdd)")
	fl.StringVarP(&onbidQuery.ItemName, "query", "q", "", "item name keyword")
	rootCmd.AddCommand(onbidCmd)
}
