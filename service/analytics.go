package service

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNoBudget = errors.New("no budget configured")

// RecordSource is what analytics needs from the ledger.
type RecordSource interface {
	Total() decimal.Decimal
	Budget() (decimal.Decimal, bool)
}

type AnalyticsService struct {
	src RecordSource
}

func NewAnalyticsService(src RecordSource) *AnalyticsService {
	return &AnalyticsService{src: src}
}

// BudgetStatus reports the running total against the session budget. Exactly one of
// Remaining / Overrun is meaningful, selected by Over.
type BudgetStatus struct {
	Budget    decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal
	Overrun   decimal.Decimal
	Over      bool
}

func (s *AnalyticsService) Total() decimal.Decimal {
	return s.src.Total()
}

// Status compares the running total against the budget. Returns ErrNoBudget when no
// budget has been configured this session.
func (s *AnalyticsService) Status() (BudgetStatus, error) {
	budget, ok := s.src.Budget()
	if !ok {
		return BudgetStatus{}, ErrNoBudget
	}
	total := s.src.Total()
	st := BudgetStatus{
		Budget: budget,
		Total:  total,
	}
	if total.GreaterThan(budget) {
		st.Over = true
		st.Overrun = total.Sub(budget).Round(2)
	} else {
		st.Remaining = budget.Sub(total).Round(2)
	}
	return st, nil
}
