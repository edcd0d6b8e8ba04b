package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// UsagePercentage is actual as a percentage of budget, 0 for a zero budget.
func UsagePercentage(actual, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return actual.Div(budget).Mul(hundred)
}

// VariancePercentage is positive when under budget and negative when over.
func VariancePercentage(variance, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return variance.Div(budget).Mul(hundred)
}

// AccuracyScore rates how close spending came to the budget, from 0 to 100.
func AccuracyScore(variance, budget decimal.Decimal) int {
	if budget.IsZero() {
		return 0
	}
	score := hundred.Sub(VariancePercentage(variance, budget).Abs()).Round(0)
	return max(0, int(score.IntPart()))
}

type CategoryBreakdown struct {
	Budgeted   decimal.Decimal
	Actual     decimal.Decimal
	Variance   decimal.Decimal // Budgeted - Actual
	Percentage decimal.Decimal // Variance as a percentage of Budgeted
}

// CategoryVariance compares the active budget items of a category with the
// expenses booked under it. Callers scope txs to a period if they need to.
func CategoryVariance(txs []models.Transaction, items []models.BudgetTemplate, category string) CategoryBreakdown {
	budgeted := ActiveBudgetTotal(lo.Filter(items, func(b models.BudgetTemplate, _ int) bool {
		return b.Category == category
	}))
	actual := lo.Reduce(txs, func(sum decimal.Decimal, t models.Transaction, _ int) decimal.Decimal {
		if t.Category != category || t.Type != models.TransactionExpense {
			return sum
		}
		return sum.Add(t.Amount)
	}, decimal.Zero)

	variance := budgeted.Sub(actual)
	percentage := decimal.Zero
	if budgeted.IsPositive() {
		percentage = variance.Div(budgeted).Mul(hundred)
	}
	return CategoryBreakdown{
		Budgeted:   budgeted,
		Actual:     actual,
		Variance:   variance,
		Percentage: percentage,
	}
}

// PeriodEndDate adds days to a YYYY-MM-DD start date.
func PeriodEndDate(start string, days int) (string, error) {
	t, err := time.Parse(dateLayout, start)
	if err != nil {
		return "", fmt.Errorf("parse start date: %w", err)
	}
	return t.AddDate(0, 0, days).Format(dateLayout), nil
}

// DaysRemaining counts the started days between now and midnight UTC of the
// end date. Past dates give 0.
func DaysRemaining(end string, now time.Time) (int, error) {
	t, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("parse end date: %w", err)
	}
	days := math.Ceil(t.Sub(now).Hours() / 24)
	return max(0, int(days)), nil
}
