package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidAmount   = errors.New("amount is not a valid number")
	ErrUnknownCategory = errors.New("category is not in the allowed set")
)

type Factory struct{}

// ParseExpenseRecord builds a record from raw user input. Date and amount are parsed
// here; the category must be a member of allowed. Any failure rejects the candidate.
func (f Factory) ParseExpenseRecord(dateStr, amountStr, category, desc string, allowed CategorySet) (ExpenseRecord, error) {
	when, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return ExpenseRecord{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	amt, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return ExpenseRecord{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amountStr)
	}
	return f.NewExpenseRecord(when, amt, category, desc, allowed)
}

// NewExpenseRecord builds a record from typed values, enforcing the same rules as
// ParseExpenseRecord. Used by the import paths where rows are already typed.
func (f Factory) NewExpenseRecord(when time.Time, amount decimal.Decimal, category, desc string, allowed CategorySet) (ExpenseRecord, error) {
	amt, ok := normalizeAmount(amount)
	if !ok {
		return ExpenseRecord{}, fmt.Errorf("%w: %s", ErrNonPositiveAmount, amount)
	}
	canonical, ok := allowed.Canonical(category)
	if !ok {
		return ExpenseRecord{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	rec := ExpenseRecord{
		ID:          RecordID(uuid.NewString()),
		Date:        when,
		Amount:      amt,
		Category:    canonical,
		Description: strings.TrimSpace(desc),
	}
	return rec, rec.Validate()
}

// RestoreExpenseRecord rebuilds a record loaded from storage. The allowed set is not
// persisted with records, so category membership is not re-checked here.
func (Factory) RestoreExpenseRecord(when time.Time, amount decimal.Decimal, category, desc string) ExpenseRecord {
	return ExpenseRecord{
		ID:          RecordID(uuid.NewString()),
		Date:        when,
		Amount:      amount.Round(2),
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(desc),
	}
}
