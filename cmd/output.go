package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"korea-realestate/models"
	"korea-realestate/parsers"
	"korea-realestate/storage"
	"korea-realestate/utils"
)

const (
	colorTitle = "1;35"
	colorHead  = "1;33"
	colorValue = "1;32"
	colorRed   = "1;31"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// paint wraps s in an ANSI color when stdout is a terminal.
func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: encode output: %v\n", err)
	}
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("  (결과 없음)")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func printSection(title string) {
	sep := strings.Repeat("═", 54)
	fmt.Printf("\n%s\n", paint(colorTitle, sep))
	fmt.Printf("%s\n", paint(colorTitle, "  "+title))
	fmt.Printf("%s\n\n", paint(colorTitle, sep))
}

func printMetric(label, value string) {
	fmt.Printf("  %-14s : %s\n", label, paint(colorValue, value))
}

// printSummary renders trade or rent statistics.
func printSummary(s models.SummaryStats) {
	thin := strings.Repeat("─", 54)
	fmt.Printf("%s\n", paint(colorHead, "  요약"))
	fmt.Printf("  %s\n", thin)

	switch v := s.(type) {
	case *models.TradeSummary:
		printMetric("거래 건수", utils.FormatCount(v.TotalCount))
		if v.TotalCount == 0 {
			break
		}
		printMetric("중위 거래가", utils.FormatPrice(v.MedianPrice))
		printMetric("최저 거래가", utils.FormatPrice(float64(v.MinPrice)))
		printMetric("최고 거래가", utils.FormatPrice(float64(v.MaxPrice)))
	case *models.RentSummary:
		printMetric("거래 건수", utils.FormatCount(v.TotalCount))
		if v.TotalCount == 0 {
			break
		}
		printMetric("중위 보증금", utils.FormatPrice(v.MedianDeposit))
		printMetric("최저 보증금", utils.FormatPrice(float64(v.MinDeposit)))
		printMetric("평균 월세", utils.FormatPrice(v.AvgMonthlyRent))
	}
	fmt.Println()
}

// itemTable flattens pass-through items, optionally limited to the given
// columns.
func itemTable(items []models.Item, columns []string) ([]string, [][]string) {
	if len(columns) == 0 {
		columns = storage.ItemColumns(items)
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = truncate(parsers.Str(it[c]), 40)
		}
		rows = append(rows, row)
	}
	return columns, rows
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func exportRecords(records []models.Record) error {
	if csvPath == "" {
		return nil
	}
	w, err := storage.NewCSVWriter(csvPath)
	if err != nil {
		return err
	}
	var out storage.RecordWriter = w
	if err := out.WriteRecords(records); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	current.logger.Info("[export] %d records saved to %s", len(records), csvPath)
	return nil
}

func exportItems(items []models.Item) error {
	if csvPath == "" {
		return nil
	}
	w, err := storage.NewCSVWriter(csvPath)
	if err != nil {
		return err
	}
	var out storage.ItemWriter = w
	if err := out.WriteItems(items); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	current.logger.Info("[export] %d rows saved to %s", len(items), csvPath)
	return nil
}
