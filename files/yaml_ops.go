package files

import (
	"bytes"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"expenses/domain"
)

type rowYAML struct {
	Date        string `yaml:"date"`
	Category    string `yaml:"category"`
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
}

// YAMLEncoder is the YAML encoding strategy.
type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]rowYAML, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowYAML{
			Date:        r.Date.Format(domain.DateLayout),
			Category:    r.Category,
			Amount:      r.Amount.StringFixed(2),
			Description: r.Description,
		})
	}
	return yaml.Marshal(out)
}

func ExportRowsYAML(path string, rows []Row) error {
	return ExportRows(path, rows, YAMLEncoder{})
}

type YAMLImporter struct{}

func (YAMLImporter) parse(data []byte) ([]Row, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var in []rowYAML
	if err := dec.Decode(&in); err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(in))
	for _, r := range in {
		dt, err := time.Parse(domain.DateLayout, r.Date)
		if err != nil {
			continue
		}
		amt, err := decimal.NewFromString(r.Amount)
		if err != nil {
			continue
		}
		out = append(out, Row{
			Date:        dt,
			Category:    r.Category,
			Amount:      amt.Round(2),
			Description: r.Description,
		})
	}
	return out, nil
}

func ImportRowsYAML(path string) ([]Row, error) {
	base := BaseImporter{parser: YAMLImporter{}}
	return base.Import(path)
}
