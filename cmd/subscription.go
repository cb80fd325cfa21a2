package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"korea-realestate/models"
	"korea-realestate/registry"
	"korea-realestate/utils"
)

// Notice columns shown in the table when present.
var noticeColumns = []string{
	"HOUSE_NM", "HSSPLY_ADRES", "TOT_SUPLY_HSHLDCO", "RCRIT_PBLANC_DE", "RCEPT_BGNDE", "RCEPT_ENDDE",
}

var (
	subPage    int
	subPerPage int
	statMonth  string
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "List APT subscription (청약) notices",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := current.agg.SubscriptionInfo(cmd.Context(), subPage, subPerPage)
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

		printSection(fmt.Sprintf("청약 분양 공고 · %d페이지 (총 %s)", res.Page, utils.FormatCount(res.TotalCount)))
		printTable(itemTable(res.Items, presentColumns(res.Items, noticeColumns)))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <kind>",
	Short: "Show a subscription statistic",
	Long:  "Show a subscription statistic. Kinds:\n" + statKindHelp(),
	Example: `  realestate stats cmpetrt_area --month 202501
  realestate stats aps_przwner --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := current.agg.SubscriptionStats(cmd.Context(), args[0], statMonth, subPage, subPerPage)
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

		printSection(fmt.Sprintf("%s (총 %s)", statLabel(res.StatKind), utils.FormatCount(res.TotalCount)))
		printTable(itemTable(res.Items, nil))
		return nil
	},
}

func statKindHelp() string {
	s := ""
	for _, k := range registry.StatKinds {
		s += fmt.Sprintf("  %-14s %s\n", k.Key, k.Label)
	}
	return s
}

func statLabel(key string) string {
	for _, k := range registry.StatKinds {
		if k.Key == key {
			return k.Label
		}
	}
	return key
}

// presentColumns keeps the preferred columns that occur in items. It returns
// nil when none do, so the table falls back to every key.
func presentColumns(items []models.Item, preferred []string) []string {
	var cols []string
	for _, c := range preferred {
		for _, it := range items {
			if _, ok := it[c]; ok {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}

func init() {
	for _, c := range []*cobra.Command{subscriptionCmd, statsCmd} {
		c.Flags().IntVar(&subPage, "page", 1, "page number")
		c.Flags().IntVar(&subPerPage, "per-page", 10, "rows per page")
		rootCmd.AddCommand(c)
	}
	statsCmd.Flags().StringVarP(&statMonth, "month", "m", "", "filter to one YYYYMM month")
}
