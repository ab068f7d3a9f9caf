package facade

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenses/domain"
	"expenses/files"
	"expenses/ledger"
	"expenses/log"
	"expenses/service"
)

func newTestFacade(t *testing.T) (LedgerFacade, AnalyticsFacade) {
	t.Helper()
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	led := ledger.New(logger)
	lf := LedgerFacade{
		F:          domain.Factory{},
		Ledger:     led,
		Categories: domain.NewCategorySet("Food", "Transportation", "Other"),
		Store:      files.NewCSVStore(logger),
		Log:        logger,
	}
	af := AnalyticsFacade{Svc: service.NewAnalyticsService(led)}
	return lf, af
}

func TestAddThenListYieldsRecordUnchanged(t *testing.T) {
	lf, _ := newTestFacade(t)

	rec, err := lf.Add(AddRecordInput{Date: "2024-01-05", Amount: "42.50", Category: "Food", Description: "lunch"})
	require.NoError(t, err)

	var got []domain.ExpenseRecord
	for r := range lf.Records() {
		got = append(got, r)
	}
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestAddRejectsLeaveLedgerUnchanged(t *testing.T) {
	lf, _ := newTestFacade(t)

	cases := []AddRecordInput{
		{Date: "2024-01-05", Amount: "0", Category: "Food"},
		{Date: "2024-01-05", Amount: "-1.50", Category: "Food"},
		{Date: "2024-01-05", Amount: "ten", Category: "Food"},
		{Date: "2024-99-05", Amount: "10.00", Category: "Food"},
		{Date: "2024-01-05", Amount: "10.00", Category: "Rent"},
	}
	for _, in := range cases {
		_, err := lf.Add(in)
		assert.Error(t, err)
		assert.Equal(t, 0, lf.Len())
	}
}

func TestSetBudget(t *testing.T) {
	lf, af := newTestFacade(t)

	assert.ErrorIs(t, lf.SetBudget("abc"), domain.ErrInvalidAmount)
	assert.ErrorIs(t, lf.SetBudget("-5"), ledger.ErrNonPositiveBudget)

	_, err := af.Status()
	assert.ErrorIs(t, err, service.ErrNoBudget)

	require.NoError(t, lf.SetBudget("100"))
	st, err := af.Status()
	require.NoError(t, err)
	assert.Equal(t, "100.00", st.Budget.StringFixed(2))
}

func TestEndToEnd(t *testing.T) {
	lf, af := newTestFacade(t)

	_, err := lf.Add(AddRecordInput{Date: "2024-01-05", Amount: "42.50", Category: "Food", Description: "lunch"})
	require.NoError(t, err)
	_, err = lf.Add(AddRecordInput{Date: "2024-01-06", Amount: "15.00", Category: "Transportation", Description: "bus"})
	require.NoError(t, err)

	assert.Equal(t, "57.50", af.Total().StringFixed(2))

	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, lf.SaveTo(path))

	fresh, _ := newTestFacade(t)
	n, err := fresh.LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var got []domain.ExpenseRecord
	for r := range fresh.Records() {
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-05", got[0].Date.Format(domain.DateLayout))
	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, "42.50", got[0].Amount.StringFixed(2))
	assert.Equal(t, "lunch", got[0].Description)
	assert.Equal(t, "2024-01-06", got[1].Date.Format(domain.DateLayout))
	assert.Equal(t, "Transportation", got[1].Category)
	assert.Equal(t, "15.00", got[1].Amount.StringFixed(2))
	assert.Equal(t, "bus", got[1].Description)

	require.NoError(t, lf.SetBudget("50"))
	st, err := af.Status()
	require.NoError(t, err)
	assert.True(t, st.Over)
	assert.Equal(t, "7.50", st.Overrun.StringFixed(2))
}

func TestLoadFromMissingFile(t *testing.T) {
	lf, _ := newTestFacade(t)

	n, err := lf.LoadFrom(filepath.Join(t.TempDir(), "nope.csv"))
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 0, lf.Len())
}

func TestLoadFromKeepsForeignCategories(t *testing.T) {
	lf, _ := newTestFacade(t)
	_, err := lf.Add(AddRecordInput{Date: "2024-01-05", Amount: "9.99", Category: "Other", Description: "misc"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, lf.SaveTo(path))

	// a session configured with a different allowed set still loads the data
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	narrow := LedgerFacade{
		F:          domain.Factory{},
		Ledger:     ledger.New(logger),
		Categories: domain.NewCategorySet("Food"),
		Store:      files.NewCSVStore(logger),
		Log:        logger,
	}
	n, err := narrow.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportEnforcesCategories(t *testing.T) {
	lf, _ := newTestFacade(t)

	rows := []files.Row{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Category: "Food", Amount: decimal.RequireFromString("10.00")},
		{Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), Category: "Rent", Amount: decimal.RequireFromString("900.00")},
		{Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Category: "Other", Amount: decimal.Zero},
	}
	added, skipped := lf.Import(rows)
	assert.Equal(t, 1, added)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 1, lf.Len())
}

func TestSaveToEmptyLedgerIsNoOp(t *testing.T) {
	lf, _ := newTestFacade(t)
	err := lf.SaveTo(filepath.Join(t.TempDir(), "expenses.csv"))
	assert.ErrorIs(t, err, files.ErrNothingToSave)
}
