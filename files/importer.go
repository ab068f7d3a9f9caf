package files

import (
	"os"
)

// Importer is the format-specific half of the import template.
type Importer interface {
	parse(data []byte) ([]Row, error)
}

// BaseImporter carries the shared import steps: read file, hand off to the parser.
type BaseImporter struct {
	parser Importer
}

func (b BaseImporter) Import(path string) ([]Row, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return b.parser.parse(bin)
}
