package files

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"expenses/domain"
	"expenses/log"
)

var ErrNothingToSave = errors.New("nothing to save")

// CSVStore reads and writes the canonical four-column ledger file.
type CSVStore struct {
	log *log.Logger
}

func NewCSVStore(logger *log.Logger) *CSVStore {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &CSVStore{log: logger.WithComponent(log.ComponentFiles)}
}

// Save writes rows in order under the fixed header. Rows failing the completeness
// check are skipped and reported. An empty row set writes nothing at all.
func (s *CSVStore) Save(path string, rows []Row) error {
	if len(rows) == 0 {
		return ErrNothingToSave
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for i, r := range rows {
		if err := rowComplete(r); err != nil {
			s.log.Warn("skipping incomplete record",
				log.FieldRow, i+1, log.FieldReason, err.Error())
			continue
		}
		rec := []string{
			r.Date.Format(domain.DateLayout),
			r.Category,
			r.Amount.StringFixed(2),
			r.Description,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// Load reads rows back in file order. A missing file means an empty ledger, not an
// error. The header row is discarded; a data row needs exactly four columns, a
// parseable date and a parseable amount, otherwise it is skipped and reported.
func (s *CSVStore) Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var out []Row
	line := 1
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line++
		if len(rec) != len(Header) {
			s.log.Warn("skipping row with wrong column count",
				log.FieldPath, path, log.FieldRow, line, "columns", len(rec))
			continue
		}
		dt, err := time.Parse(domain.DateLayout, rec[0])
		if err != nil {
			s.log.Warn("skipping row with invalid date",
				log.FieldPath, path, log.FieldRow, line, "value", rec[0])
			continue
		}
		amt, err := decimal.NewFromString(rec[2])
		if err != nil {
			s.log.Warn("skipping row with invalid amount",
				log.FieldPath, path, log.FieldRow, line, "value", rec[2])
			continue
		}
		out = append(out, Row{
			Date:        dt,
			Category:    rec[1],
			Amount:      amt.Round(2),
			Description: rec[3],
		})
	}
	return out, nil
}

func rowComplete(r Row) error {
	switch {
	case r.Date.IsZero():
		return domain.ErrZeroDate
	case !r.Amount.GreaterThan(decimal.Zero):
		return domain.ErrNonPositiveAmount
	case r.Category == "":
		return domain.ErrEmptyCategory
	}
	return nil
}
