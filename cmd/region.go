package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var regionCmd = &cobra.Command{
	Use:   "region <name>",
	Short: "Resolve a place name to administrative region codes",
	Example: `  realestate region 마포구
  realestate region "경남 고성군"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := current.agg.ResolveRegion(joinArgs(args))
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(m)
			return nil
		}

		rows := make([][]string, 0, len(m.Matches))
		for _, r := range m.Matches {
			rows = append(rows, []string{r.Name, r.LawdCode(), r.Code})
		}
		printTable([]string{"지역", "법정동코드(5)", "코드"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionCmd)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
