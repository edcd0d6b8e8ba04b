package ledger_test

import (
	"testing"
	"time"

	"github.com/Miguelburitica/accounts-project/internal/ledger"
	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/stretchr/testify/require"
)

func TestPercentages(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value, budget string
		usage         string
		variance      string
		accuracy      int
	}{
		"half":        {value: "250000", budget: "500000", usage: "50", variance: "50", accuracy: 50},
		"exact":       {value: "500000", budget: "500000", usage: "100", variance: "100", accuracy: 0},
		"over":        {value: "750000", budget: "500000", usage: "150", variance: "150", accuracy: 0},
		"small":       {value: "25000", budget: "500000", usage: "5", variance: "5", accuracy: 95},
		"negative":    {value: "-100000", budget: "500000", usage: "-20", variance: "-20", accuracy: 80},
		"large miss":  {value: "-400000", budget: "500000", usage: "-80", variance: "-80", accuracy: 20},
		"zero":        {value: "0", budget: "500000", usage: "0", variance: "0", accuracy: 100},
		"zero budget": {value: "100000", budget: "0", usage: "0", variance: "0", accuracy: 0},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.usage, ledger.UsagePercentage(dec(tt.value), dec(tt.budget)).String())
			require.Equal(t, tt.variance, ledger.VariancePercentage(dec(tt.value), dec(tt.budget)).String())
			require.Equal(t, tt.accuracy, ledger.AccuracyScore(dec(tt.value), dec(tt.budget)))
		})
	}
}

func TestCategoryVariance(t *testing.T) {
	t.Parallel()

	txs := []models.Transaction{
		{Category: "Food", Type: models.TransactionExpense, Amount: dec("250000")},
		{Category: "Food", Type: models.TransactionExpense, Amount: dec("50000")},
		{Category: "Food", Type: models.TransactionIncome, Amount: dec("999999")},
		{Category: "Transport", Type: models.TransactionExpense, Amount: dec("100000")},
		{Category: "Unexpected", Type: models.TransactionExpense, Amount: dec("100000")},
	}
	items := []models.BudgetTemplate{
		{Category: "Food", Amount: dec("400000"), IsActive: true},
		{Category: "Food", Amount: dec("70000"), IsActive: false},
		{Category: "Transport", Amount: dec("150000"), IsActive: true},
	}

	food := ledger.CategoryVariance(txs, items, "Food")
	require.Equal(t, "400000", food.Budgeted.String())
	require.Equal(t, "300000", food.Actual.String())
	require.Equal(t, "100000", food.Variance.String())
	require.Equal(t, "25", food.Percentage.String())

	transport := ledger.CategoryVariance(txs, items, "Transport")
	require.Equal(t, "50000", transport.Variance.String())
	require.InDelta(t, 33.33, transport.Percentage.InexactFloat64(), 0.01)

	unexpected := ledger.CategoryVariance(txs, items, "Unexpected")
	require.True(t, unexpected.Budgeted.IsZero())
	require.Equal(t, "-100000", unexpected.Variance.String())
	require.True(t, unexpected.Percentage.IsZero())

	none := ledger.CategoryVariance(nil, items, "Transport")
	require.True(t, none.Actual.IsZero())
	require.Equal(t, "100", none.Percentage.String())
}

func TestPeriodEndDate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		start string
		want  string
	}{
		"same month":     {start: "2024-01-01", want: "2024-01-15"},
		"month boundary": {start: "2024-01-25", want: "2024-02-08"},
		"year boundary":  {start: "2024-12-25", want: "2025-01-08"},
		"leap year":      {start: "2024-02-20", want: "2024-03-05"},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ledger.PeriodEndDate(tt.start, 14)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ledger.PeriodEndDate("invalid-date", 14)
	require.Error(t, err)
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		end  string
		want int
	}{
		"future":   {end: "2024-01-15", want: 5},
		"tomorrow": {end: "2024-01-11", want: 1},
		"today":    {end: "2024-01-10", want: 0},
		"past":     {end: "2024-01-09", want: 0},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ledger.DaysRemaining(tt.end, now)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ledger.DaysRemaining("", now)
	require.Error(t, err)
}
