package storage

import "korea-realestate/models"

// RecordWriter is the interface any export backend for normalized
// transaction records must satisfy.
type RecordWriter interface {
	WriteRecords(records []models.Record) error
	Close() error
}

// ItemWriter exports pass-through upstream rows (subscription notices,
// statistics, auction listings).
type ItemWriter interface {
	WriteItems(items []models.Item) error
	Close() error
}
