package ledger

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func (l *Ledger) AddAccount(ctx context.Context, a models.Account) (models.Account, error) {
	if err := a.Validate(); err != nil {
		return models.Account{}, fmt.Errorf("AddAccount: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a.ID = nextID(l.state.Accounts, accountID)
	l.state.Accounts = append(l.state.Accounts, a)
	l.save(ctx)
	return a, nil
}

// UpdateAccountBalance sets the balance and stamps today's date on the account.
func (l *Ledger) UpdateAccountBalance(ctx context.Context, id int, balance decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.Accounts, accountID, id)
	if i < 0 {
		return false
	}
	l.state.Accounts[i].CurrentBalance = balance
	l.state.Accounts[i].LastUpdated = l.now().Format(dateLayout)
	l.save(ctx)
	return true
}

func (l *Ledger) AddReceivable(ctx context.Context, r models.Receivable) (models.Receivable, error) {
	if err := r.Validate(); err != nil {
		return models.Receivable{}, fmt.Errorf("AddReceivable: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r.ID = nextID(l.state.Receivables, receivableID)
	l.state.Receivables = append(l.state.Receivables, r)
	l.save(ctx)
	return r, nil
}

// RecordReceivablePayment stores a payment. The receivable itself is left
// untouched; reconciling its balance is up to the caller.
func (l *Ledger) RecordReceivablePayment(ctx context.Context, p models.ReceivablePayment) models.ReceivablePayment {
	l.mu.Lock()
	defer l.mu.Unlock()

	p.ID = nextID(l.state.ReceivablePayments, paymentID)
	l.state.ReceivablePayments = append(l.state.ReceivablePayments, p)
	l.save(ctx)
	return p
}

func (l *Ledger) AddVariance(ctx context.Context, v models.Variance) models.Variance {
	l.mu.Lock()
	defer l.mu.Unlock()

	v.ID = nextID(l.state.Variances, varianceID)
	l.state.Variances = append(l.state.Variances, v)
	l.save(ctx)
	return v
}

func (l *Ledger) UpdateVariance(ctx context.Context, id int, u models.VarianceUpdate) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	found, _ := updateByID(l.state.Variances, varianceID, id, func(v models.Variance) (models.Variance, error) {
		return u.Apply(v), nil
	})
	if found {
		l.save(ctx)
	}
	return found
}

func (l *Ledger) DeleteVariance(ctx context.Context, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found bool
	l.state.Variances, found = deleteByID(l.state.Variances, varianceID, id)
	if found {
		l.save(ctx)
	}
	return found
}

func (l *Ledger) AddGoal(ctx context.Context, g models.Goal) (models.Goal, error) {
	if err := g.Validate(); err != nil {
		return models.Goal{}, fmt.Errorf("AddGoal: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	g.ID = nextID(l.state.Goals, goalID)
	l.state.Goals = append(l.state.Goals, g)
	l.save(ctx)
	return g, nil
}

func (l *Ledger) UpdateGoal(ctx context.Context, id int, u models.GoalUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	found, err := updateByID(l.state.Goals, goalID, id, func(g models.Goal) (models.Goal, error) {
		updated := u.Apply(g)
		return updated, updated.Validate()
	})
	if err != nil {
		return false, fmt.Errorf("UpdateGoal: %w", err)
	}
	if found {
		l.save(ctx)
	}
	return found, nil
}

func (l *Ledger) DeleteGoal(ctx context.Context, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found bool
	l.state.Goals, found = deleteByID(l.state.Goals, goalID, id)
	if found {
		l.save(ctx)
	}
	return found
}

// AddExpenseCategory adds name to the sorted category list. Blank and
// duplicate names are ignored.
func (l *Ledger) AddExpenseCategory(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)

	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" || slices.Contains(l.state.ExpenseCategories, name) {
		return false
	}
	l.state.ExpenseCategories = append(l.state.ExpenseCategories, name)
	slices.Sort(l.state.ExpenseCategories)
	l.save(ctx)
	return true
}

type CategoryOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (l *Ledger) ExpenseCategoryOptions() []CategoryOption {
	l.mu.Lock()
	defer l.mu.Unlock()

	return lo.Map(l.state.ExpenseCategories, func(c string, _ int) CategoryOption {
		return CategoryOption{Label: c, Value: c}
	})
}
