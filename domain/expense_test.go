package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpenseRecord_Valid(t *testing.T) {
	allowed := NewCategorySet("Food", "Transportation")

	rec, err := Factory{}.ParseExpenseRecord("2024-01-05", "42.50", "Food", "lunch", allowed)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2024-01-05", rec.Date.Format(DateLayout))
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, "Food", rec.Category)
	assert.Equal(t, "lunch", rec.Description)
	assert.NoError(t, rec.Validate())
}

func TestParseExpenseRecord_Rejects(t *testing.T) {
	allowed := NewCategorySet("Food", "Transportation")

	tests := []struct {
		name    string
		date    string
		amount  string
		cat     string
		wantErr error
	}{
		{"month out of range", "2024-13-01", "10.00", "Food", ErrInvalidDate},
		{"wrong date order", "05-01-2024", "10.00", "Food", ErrInvalidDate},
		{"empty date", "", "10.00", "Food", ErrInvalidDate},
		{"non-numeric amount", "2024-01-05", "abc", "Food", ErrInvalidAmount},
		{"zero amount", "2024-01-05", "0", "Food", ErrNonPositiveAmount},
		{"negative amount", "2024-01-05", "-5.00", "Food", ErrNonPositiveAmount},
		{"unknown category", "2024-01-05", "10.00", "Rent", ErrUnknownCategory},
		{"empty category", "2024-01-05", "10.00", "", ErrUnknownCategory},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Factory{}.ParseExpenseRecord(tc.date, tc.amount, tc.cat, "", allowed)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseExpenseRecord_CanonicalCategory(t *testing.T) {
	allowed := NewCategorySet("Food")

	rec, err := Factory{}.ParseExpenseRecord("2024-01-05", "10.00", "food", "", allowed)
	require.NoError(t, err)
	assert.Equal(t, "Food", rec.Category)
}

func TestNewExpenseRecord_RoundsAmount(t *testing.T) {
	allowed := NewCategorySet("Food")
	when := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	rec, err := Factory{}.NewExpenseRecord(when, decimal.RequireFromString("9.999"), "Food", "", allowed)
	require.NoError(t, err)
	assert.Equal(t, "10.00", rec.Amount.StringFixed(2))
}

func TestRestoreExpenseRecord_SkipsCategoryCheck(t *testing.T) {
	rec := Factory{}.RestoreExpenseRecord(
		time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("3.50"), "Books", "novel")

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Books", rec.Category)
	assert.NoError(t, rec.Validate())
}

func TestExpenseRecordValidate(t *testing.T) {
	base := Factory{}.RestoreExpenseRecord(
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("1.00"), "Food", "")

	noID := base
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), ErrEmptyRecordID)

	noDate := base
	noDate.Date = time.Time{}
	assert.ErrorIs(t, noDate.Validate(), ErrZeroDate)

	zeroAmt := base
	zeroAmt.Amount = decimal.Zero
	assert.ErrorIs(t, zeroAmt.Validate(), ErrNonPositiveAmount)

	noCat := base
	noCat.Category = " "
	assert.ErrorIs(t, noCat.Validate(), ErrEmptyCategory)
}

func TestCategorySet(t *testing.T) {
	s := NewCategorySet("Food", " food ", "", "Transportation")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("FOOD"))
	assert.False(t, s.Contains("Rent"))

	name, ok := s.Canonical("transportation")
	assert.True(t, ok)
	assert.Equal(t, "Transportation", name)

	names := s.Names()
	names[0] = "mutated"
	assert.True(t, s.Contains("Food"))

	assert.NoError(t, s.Validate())
	assert.ErrorIs(t, NewCategorySet().Validate(), ErrNoCategories)
}
