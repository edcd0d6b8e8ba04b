package ledger

import (
	"context"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LiquidAssets sums the balance of every account.
func LiquidAssets(accounts []models.Account) decimal.Decimal {
	return lo.Reduce(accounts, func(sum decimal.Decimal, a models.Account, _ int) decimal.Decimal {
		return sum.Add(a.CurrentBalance)
	}, decimal.Zero)
}

// OutstandingReceivables sums the balance of every receivable, whatever its status.
func OutstandingReceivables(receivables []models.Receivable) decimal.Decimal {
	return lo.Reduce(receivables, func(sum decimal.Decimal, r models.Receivable, _ int) decimal.Decimal {
		return sum.Add(r.CurrentBalance)
	}, decimal.Zero)
}

// ActiveBudgetTotal sums the active budget template items.
func ActiveBudgetTotal(items []models.BudgetTemplate) decimal.Decimal {
	active := lo.Filter(items, func(b models.BudgetTemplate, _ int) bool { return b.IsActive })
	return lo.Reduce(active, func(sum decimal.Decimal, b models.BudgetTemplate, _ int) decimal.Decimal {
		return sum.Add(b.Amount)
	}, decimal.Zero)
}

// PeriodExpenses sums the expense transactions booked against periodID.
func PeriodExpenses(txs []models.Transaction, periodID int) decimal.Decimal {
	expenses := lo.Filter(txs, func(t models.Transaction, _ int) bool {
		return t.PeriodID == periodID && t.Type == models.TransactionExpense
	})
	return lo.Reduce(expenses, func(sum decimal.Decimal, t models.Transaction, _ int) decimal.Decimal {
		return sum.Add(t.Amount)
	}, decimal.Zero)
}

func (l *Ledger) TotalLiquidAssets() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LiquidAssets(l.state.Accounts)
}

func (l *Ledger) TotalReceivables() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return OutstandingReceivables(l.state.Receivables)
}

func (l *Ledger) TotalNetWorth() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LiquidAssets(l.state.Accounts).Add(OutstandingReceivables(l.state.Receivables))
}

// CurrentPeriodBudget is the active budget template total. Templates recur
// every period, so this is not scoped to the current period.
func (l *Ledger) CurrentPeriodBudget() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return ActiveBudgetTotal(l.state.BudgetTemplate)
}

// CurrentPeriodActual is zero when no period is active.
func (l *Ledger) CurrentPeriodActual() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.currentActual()
}

func (l *Ledger) CurrentPeriodVariance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return ActiveBudgetTotal(l.state.BudgetTemplate).Sub(l.currentActual())
}

func (l *Ledger) currentActual() decimal.Decimal {
	p := l.currentPeriod()
	if p == nil {
		return decimal.Zero
	}
	return PeriodExpenses(l.state.Transactions, p.ID)
}

// RefreshPeriodActuals recomputes the cached actual and variance of the active
// period and saves. It does nothing without an active period.
func (l *Ledger) RefreshPeriodActuals(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refreshActuals() {
		l.save(ctx)
	}
}

func (l *Ledger) refreshActuals() bool {
	p := l.currentPeriod()
	if p == nil {
		return false
	}
	p.TotalActual = PeriodExpenses(l.state.Transactions, p.ID)
	p.Variance = p.TotalBudget.Sub(p.TotalActual)
	return true
}

// touchesCurrent reports whether any of the period ids is the active period.
func (l *Ledger) touchesCurrent(periodIDs ...int) bool {
	p := l.currentPeriod()
	return p != nil && lo.Contains(periodIDs, p.ID)
}
