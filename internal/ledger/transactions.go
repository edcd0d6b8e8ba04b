package ledger

import (
	"context"
	"fmt"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/Miguelburitica/accounts-project/internal/models/events"
)

// AddTransaction books tx under the next free id. The id set on tx is ignored.
func (l *Ledger) AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	const op = "AddTransaction"

	if err := tx.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("%s: %w", op, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx.ID = nextID(l.state.Transactions, transactionID)
	l.state.Transactions = append(l.state.Transactions, tx)
	if l.touchesCurrent(tx.PeriodID) {
		l.refreshActuals()
	}

	l.save(ctx)
	l.publish(ctx, events.TransactionRecorded, events.TransactionChanged{
		TransactionID: tx.ID,
		PeriodID:      tx.PeriodID,
		Type:          string(tx.Type),
		Category:      tx.Category,
		Amount:        tx.Amount,
	})

	l.log.Debug().
		Int("transaction_id", tx.ID).
		Int("period_id", tx.PeriodID).
		Str("amount", tx.Amount.String()).
		Msg("Transaction recorded")
	return tx, nil
}

// UpdateTransaction merges u into the transaction with the given id. Moving a
// transaction into or out of the active period refreshes its actuals.
func (l *Ledger) UpdateTransaction(ctx context.Context, id int, u models.TransactionUpdate) (bool, error) {
	const op = "UpdateTransaction"

	l.mu.Lock()
	defer l.mu.Unlock()

	var before models.Transaction
	found, err := updateByID(l.state.Transactions, transactionID, id, func(t models.Transaction) (models.Transaction, error) {
		before = t
		updated := u.Apply(t)
		return updated, updated.Validate()
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return false, nil
	}

	after := l.state.Transactions[indexOf(l.state.Transactions, transactionID, id)]
	if l.touchesCurrent(before.PeriodID, after.PeriodID) {
		l.refreshActuals()
	}
	l.save(ctx)
	return true, nil
}

func (l *Ledger) DeleteTransaction(ctx context.Context, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.Transactions, transactionID, id)
	if i < 0 {
		return false
	}
	removed := l.state.Transactions[i]

	l.state.Transactions, _ = deleteByID(l.state.Transactions, transactionID, id)
	if l.touchesCurrent(removed.PeriodID) {
		l.refreshActuals()
	}
	l.save(ctx)
	return true
}
