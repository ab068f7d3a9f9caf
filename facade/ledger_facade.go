package facade

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"

	"expenses/domain"
	"expenses/files"
	"expenses/ledger"
	"expenses/log"
)

// AddRecordInput carries one candidate record as entered by the user. Date and amount
// stay raw strings: parsing them is part of Add, not of the prompt loop.
type AddRecordInput struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

// LedgerFacade bundles the add / list / persist scenarios over one ledger.
type LedgerFacade struct {
	F          domain.Factory
	Ledger     *ledger.Ledger
	Categories domain.CategorySet
	Store      RecordStore
	Log        *log.Logger
}

// Add validates the candidate and appends it. Any validation failure rejects the
// whole candidate and leaves the ledger unchanged.
func (f LedgerFacade) Add(in AddRecordInput) (domain.ExpenseRecord, error) {
	rec, err := f.F.ParseExpenseRecord(in.Date, in.Amount, in.Category, in.Description, f.Categories)
	if err != nil {
		return domain.ExpenseRecord{}, err
	}
	f.Ledger.Append(rec)
	return rec, nil
}

// Records is the ledger's skip-and-warn listing sequence.
func (f LedgerFacade) Records() iter.Seq[domain.ExpenseRecord] {
	return f.Ledger.All()
}

func (f LedgerFacade) Len() int { return f.Ledger.Len() }

// SetBudget parses and installs the session budget. Held in memory only.
func (f LedgerFacade) SetBudget(amount string) error {
	v, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, amount)
	}
	return f.Ledger.SetBudget(v)
}

// SaveTo writes the current records to path in insertion order. The store applies the
// per-record completeness check; an empty ledger writes nothing.
func (f LedgerFacade) SaveTo(path string) error {
	recs := f.Ledger.Records()
	rows := make([]files.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, files.Row{
			Date:        r.Date,
			Category:    r.Category,
			Amount:      r.Amount,
			Description: r.Description,
		})
	}
	return f.Store.Save(path, rows)
}

// LoadFrom appends every well-formed row from path to the ledger, in file order.
// Category membership is not re-checked: the allowed set is not persisted with the
// data, and records written under an older set must still load.
func (f LedgerFacade) LoadFrom(path string) (int, error) {
	rows, err := f.Store.Load(path)
	if err != nil {
		return 0, err
	}
	for _, r := range rows {
		f.Ledger.Append(f.F.RestoreExpenseRecord(r.Date, r.Amount, r.Category, r.Description))
	}
	return len(rows), nil
}

// Import routes already-typed rows through the strict add path, so category
// membership is enforced. Rows failing validation are skipped and reported.
func (f LedgerFacade) Import(rows []files.Row) (added, skipped int) {
	for i, r := range rows {
		rec, err := f.F.NewExpenseRecord(r.Date, r.Amount, r.Category, r.Description, f.Categories)
		if err != nil {
			f.Log.Warn("skipping imported row",
				log.FieldRow, i+1, log.FieldReason, err.Error())
			skipped++
			continue
		}
		f.Ledger.Append(rec)
		added++
	}
	return added, skipped
}

// ExportRows returns the complete records as interchange rows, for JSON/YAML export.
func (f LedgerFacade) ExportRows() []files.Row {
	var rows []files.Row
	for rec := range f.Ledger.All() {
		rows = append(rows, files.Row{
			Date:        rec.Date,
			Category:    rec.Category,
			Amount:      rec.Amount,
			Description: rec.Description,
		})
	}
	return rows
}
