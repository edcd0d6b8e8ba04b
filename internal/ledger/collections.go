package ledger

import (
	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/samber/lo"
)

func periodID(p models.Period) int             { return p.ID }
func accountID(a models.Account) int           { return a.ID }
func receivableID(r models.Receivable) int     { return r.ID }
func budgetID(b models.BudgetTemplate) int     { return b.ID }
func incomeID(i models.IncomeTemplate) int     { return i.ID }
func paymentID(p models.ReceivablePayment) int { return p.ID }
func transactionID(t models.Transaction) int   { return t.ID }
func varianceID(v models.Variance) int         { return v.ID }
func goalID(g models.Goal) int                 { return g.ID }

// nextID is max(existing ids, 0) + 1. Ids freed by deletes are not reused.
func nextID[T any](items []T, id func(T) int) int {
	ids := lo.Map(items, func(item T, _ int) int { return id(item) })
	return max(lo.Max(ids), 0) + 1
}

func indexOf[T any](items []T, id func(T) int, want int) int {
	_, i, ok := lo.FindIndexOf(items, func(item T) bool { return id(item) == want })
	if !ok {
		return -1
	}
	return i
}

// updateByID merges the first item with the given id. Unknown ids are a no-op.
func updateByID[T any](items []T, id func(T) int, want int, merge func(T) (T, error)) (bool, error) {
	i := indexOf(items, id, want)
	if i < 0 {
		return false, nil
	}
	updated, err := merge(items[i])
	if err != nil {
		return false, err
	}
	items[i] = updated
	return true, nil
}

// deleteByID drops every item with the given id.
func deleteByID[T any](items []T, id func(T) int, want int) ([]T, bool) {
	kept := lo.Reject(items, func(item T, _ int) bool { return id(item) == want })
	return kept, len(kept) != len(items)
}
