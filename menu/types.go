package menu

import (
	"expenses/domain"
	"expenses/facade"
	"expenses/ledger"
	"expenses/log"
)

type Item struct {
	Key   string `json:"key"`   // action key
	Field string `json:"field"` // display text
}

type Menu struct {
	Items []Item
}

// Deps is everything the menu actions reach for. LedgerPath is the file the session
// is currently bound to; actions that save or load may rebind it.
type Deps struct {
	Factory    domain.Factory
	Ledger     *ledger.Ledger
	Categories domain.CategorySet
	LedgerPath string
	Log        *log.Logger

	Led facade.LedgerFacade
	Ana facade.AnalyticsFacade
}
