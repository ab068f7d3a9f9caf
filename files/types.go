package files

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is the interchange form of one expense for save/load and export/import.
// Column order on disk is fixed: Date, Category, Amount, Description.
type Row struct {
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
}

// Header is the literal first row of the CSV store.
var Header = []string{"Date", "Category", "Amount", "Description"}
