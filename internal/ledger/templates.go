package ledger

import (
	"context"
	"fmt"

	"github.com/Miguelburitica/accounts-project/internal/models"
)

func (l *Ledger) AddBudgetItem(ctx context.Context, item models.BudgetTemplate) (models.BudgetTemplate, error) {
	if err := item.Validate(); err != nil {
		return models.BudgetTemplate{}, fmt.Errorf("AddBudgetItem: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item.ID = nextID(l.state.BudgetTemplate, budgetID)
	l.state.BudgetTemplate = append(l.state.BudgetTemplate, item)
	l.save(ctx)
	return item, nil
}

func (l *Ledger) UpdateBudgetItem(ctx context.Context, id int, u models.BudgetTemplateUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	found, err := updateByID(l.state.BudgetTemplate, budgetID, id, func(b models.BudgetTemplate) (models.BudgetTemplate, error) {
		updated := u.Apply(b)
		return updated, updated.Validate()
	})
	if err != nil {
		return false, fmt.Errorf("UpdateBudgetItem: %w", err)
	}
	if found {
		l.save(ctx)
	}
	return found, nil
}

func (l *Ledger) DeleteBudgetItem(ctx context.Context, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found bool
	l.state.BudgetTemplate, found = deleteByID(l.state.BudgetTemplate, budgetID, id)
	if found {
		l.save(ctx)
	}
	return found
}

func (l *Ledger) AddIncomeItem(ctx context.Context, item models.IncomeTemplate) (models.IncomeTemplate, error) {
	if err := item.Validate(); err != nil {
		return models.IncomeTemplate{}, fmt.Errorf("AddIncomeItem: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item.ID = nextID(l.state.IncomeTemplate, incomeID)
	l.state.IncomeTemplate = append(l.state.IncomeTemplate, item)
	l.save(ctx)
	return item, nil
}

func (l *Ledger) UpdateIncomeItem(ctx context.Context, id int, u models.IncomeTemplateUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	found, err := updateByID(l.state.IncomeTemplate, incomeID, id, func(i models.IncomeTemplate) (models.IncomeTemplate, error) {
		updated := u.Apply(i)
		return updated, updated.Validate()
	})
	if err != nil {
		return false, fmt.Errorf("UpdateIncomeItem: %w", err)
	}
	if found {
		l.save(ctx)
	}
	return found, nil
}

func (l *Ledger) DeleteIncomeItem(ctx context.Context, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found bool
	l.state.IncomeTemplate, found = deleteByID(l.state.IncomeTemplate, incomeID, id)
	if found {
		l.save(ctx)
	}
	return found
}
