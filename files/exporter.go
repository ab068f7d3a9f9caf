package files

import "os"

// Encoder is the encoding strategy for exports (JSON, YAML).
type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

// ExportRows encodes rows with the given strategy and writes the file in one shot.
func ExportRows(path string, rows []Row, enc Encoder) error {
	b, err := enc.EncodeRows(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
