package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRecordID     = errors.New("record id is empty")
	ErrZeroDate          = errors.New("record date is zero")
	ErrNonPositiveAmount = errors.New("amount must be > 0")
	ErrEmptyCategory     = errors.New("category is empty")
)

// ExpenseRecord is one expense entry. The ID exists only in memory: listings and
// diagnostics name records by it, the persisted form carries the four data fields only.
type ExpenseRecord struct {
	ID          RecordID        `json:"-" yaml:"-"`
	Date        time.Time       `json:"date" yaml:"date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
}

func (r ExpenseRecord) Validate() error {
	if strings.TrimSpace(string(r.ID)) == "" {
		return ErrEmptyRecordID
	}
	if r.Date.IsZero() {
		return ErrZeroDate
	}
	if !r.Amount.GreaterThan(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (r ExpenseRecord) String() string {
	return fmt.Sprintf("%s | %s | %s | %s",
		r.Date.Format(DateLayout), r.Category, r.Amount.StringFixed(2), r.Description)
}

func normalizeAmount(v decimal.Decimal) (decimal.Decimal, bool) {
	if !v.GreaterThan(decimal.Zero) {
		return decimal.Zero, false
	}
	return v.Round(2), true
}
