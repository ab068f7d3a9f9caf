package facade

import "expenses/files"

// RecordStore persists interchange rows to a flat file and reads them back.
type RecordStore interface {
	Save(path string, rows []files.Row) error
	Load(path string) ([]files.Row, error)
}
