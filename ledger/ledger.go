package ledger

import (
	"errors"
	"iter"

	"github.com/shopspring/decimal"

	"expenses/domain"
	"expenses/log"
)

var ErrNonPositiveBudget = errors.New("budget must be > 0")

// Ledger owns the ordered in-memory record sequence and the session budget. Records
// are only ever appended; the budget is never persisted. Single foreground caller,
// no locking.
type Ledger struct {
	records []domain.ExpenseRecord
	budget  *decimal.Decimal
	log     *log.Logger
}

func New(logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Ledger{log: logger.WithComponent(log.ComponentLedger)}
}

// Append adds a record to the end of the sequence. Validation happens before this
// point; Append itself never fails.
func (l *Ledger) Append(rec domain.ExpenseRecord) {
	l.records = append(l.records, rec)
}

func (l *Ledger) Len() int { return len(l.records) }

// All yields well-formed records in insertion order. A record failing validation is
// skipped and reported, not removed; the sequence is restartable.
func (l *Ledger) All() iter.Seq[domain.ExpenseRecord] {
	return func(yield func(domain.ExpenseRecord) bool) {
		for _, rec := range l.records {
			if err := rec.Validate(); err != nil {
				l.log.Warn("skipping malformed record",
					log.FieldRecord, string(rec.ID), log.FieldReason, err.Error())
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Records returns a copy of the full sequence, malformed entries included. The
// persistence layer applies its own completeness check on the way out.
func (l *Ledger) Records() []domain.ExpenseRecord {
	return append([]domain.ExpenseRecord(nil), l.records...)
}

// Total sums record amounts. A record whose amount is missing or non-positive
// contributes zero and is reported skipped; an empty ledger totals zero.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l.records {
		if !rec.Amount.GreaterThan(decimal.Zero) {
			l.log.Warn("record amount unusable, counted as zero",
				log.FieldRecord, string(rec.ID))
			continue
		}
		total = total.Add(rec.Amount.Round(2))
	}
	return total.Round(2)
}

// SetBudget sets the session budget. At most one value is active at a time.
func (l *Ledger) SetBudget(v decimal.Decimal) error {
	if !v.GreaterThan(decimal.Zero) {
		return ErrNonPositiveBudget
	}
	b := v.Round(2)
	l.budget = &b
	return nil
}

// Budget returns the active budget and whether one is configured.
func (l *Ledger) Budget() (decimal.Decimal, bool) {
	if l.budget == nil {
		return decimal.Zero, false
	}
	return *l.budget, true
}
