package files

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"expenses/domain"
)

type rowJSON struct {
	Date        string `json:"date"`        // "YYYY-MM-DD"
	Category    string `json:"category"`
	Amount      string `json:"amount"`      // "123.45"
	Description string `json:"description"` // optional
}

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]rowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowJSON{
			Date:        r.Date.Format(domain.DateLayout),
			Category:    r.Category,
			Amount:      r.Amount.StringFixed(2),
			Description: r.Description,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func ExportRowsJSON(path string, rows []Row) error {
	return ExportRows(path, rows, JSONEncoder{})
}

type JSONImporter struct{}

func (JSONImporter) parse(data []byte) ([]Row, error) {
	var in []rowJSON
	if err := json.Unmarshal(data, &in); err != nil {
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

func ImportRowsJSON(path string) ([]Row, error) {
	base := BaseImporter{parser: JSONImporter{}}
	return base.Import(path)
}
