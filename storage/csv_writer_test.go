package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"korea-realestate/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := strings.TrimPrefix(string(data), utf8BOM)
	rows, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestCSVWriterRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "deals.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}

	p := int64(52000)
	records := []models.Record{
		{AptName: "래미안", Dong: "아현동", PriceTenK: &p, TradeDate: "2025-01-09"},
		{AptName: "자이", Dong: "공덕동"},
	}
	if err := w.WriteRecords(records); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows; want header + 2", len(rows))
	}
	wantHeader := []string{"단지명", "동", "가격(만원)", "거래일"}
	if strings.Join(rows[0], ",") != strings.Join(wantHeader, ",") {
		t.Errorf("header = %v; want %v", rows[0], wantHeader)
	}
	if rows[1][2] != "52000" || rows[2][2] != "" {
		t.Errorf("price column = %q, %q", rows[1][2], rows[2][2])
	}
}

func TestCSVWriterItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	items := []models.Item{
		{"HOUSE_NM": "A", "TOT_SUPLY_HSHLDCO": float64(120)},
		{"HOUSE_NM": "B"},
	}
	if err := w.WriteItems(items); err != nil {
		t.Fatal(err)
	}
	w.Close()

	rows := readCSV(t, path)
	if strings.Join(rows[0], ",") != "HOUSE_NM,TOT_SUPLY_HSHLDCO" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "120" || rows[2][1] != "" {
		t.Errorf("rows = %v", rows[1:])
	}
}
