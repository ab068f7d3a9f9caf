package facade

import (
	"github.com/shopspring/decimal"

	"expenses/service"
)

type AnalyticsFacade struct {
	Svc *service.AnalyticsService
}

func (a AnalyticsFacade) Total() decimal.Decimal {
	return a.Svc.Total()
}

func (a AnalyticsFacade) Status() (service.BudgetStatus, error) {
	return a.Svc.Status()
}
