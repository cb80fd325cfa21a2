package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"korea-realestate/models"
	"korea-realestate/parsers"
)

// utf8BOM lets spreadsheet tools detect UTF-8 Korean headers.
const utf8BOM = "\ufeff"

// CSVWriter exports query results to a CSV file. The header is derived from
// the first batch written. It is safe for concurrent use.
type CSVWriter struct {
	mu      sync.Mutex
	file    *os.File
	writer  *csv.Writer
	columns []string
}

// NewCSVWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}
	if _, err := f.WriteString(utf8BOM); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write BOM: %w", err)
	}

	return &CSVWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// WriteRecords writes records under their Korean column labels, keeping only
// columns that carry a value.
func (c *CSVWriter) WriteRecords(records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	headers, rows := models.RecordTable(records)
	if c.columns == nil {
		if err := c.writer.Write(headers); err != nil {
			return fmt.Errorf("csv: write header: %w", err)
		}
		c.columns = headers
	}
	for _, row := range rows {
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// WriteItems writes pass-through rows. Columns are the sorted union of keys
// in the first batch; later keys outside that set are dropped.
func (c *CSVWriter) WriteItems(items []models.Item) error {
	if len(items) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.columns == nil {
		c.columns = ItemColumns(items)
		if err := c.writer.Write(c.columns); err != nil {
			return fmt.Errorf("csv: write header: %w", err)
		}
	}
	for _, it := range items {
		row := make([]string, len(c.columns))
		for i, col := range c.columns {
			row[i] = parsers.Str(it[col])
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// ItemColumns is the sorted union of keys across items.
func ItemColumns(items []models.Item) []string {
	seen := make(map[string]struct{})
	cols := []string{}
	for _, it := range items {
		for k := range it {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
