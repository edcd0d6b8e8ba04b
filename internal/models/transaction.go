package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a dated income or expense event booked against a period.
// PeriodID is a weak reference: nothing checks that the period exists.
type Transaction struct {
	ID           int             `json:"id" csv:"id"`
	PeriodID     int             `json:"period_id" csv:"period_id"`
	Date         string          `json:"date" csv:"date"` // YYYY-MM-DD
	Type         TransactionType `json:"type" csv:"type"`
	Category     string          `json:"category" csv:"category"`
	Subcategory  string          `json:"subcategory,omitempty" csv:"subcategory"`
	Amount       decimal.Decimal `json:"amount" csv:"amount"`
	Description  string          `json:"description" csv:"description"`
	VarianceFlag bool            `json:"variance_flag" csv:"variance_flag"`
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: transaction type %q", ErrInvalidEnum, t.Type)
	}
	return nil
}

// TransactionUpdate holds the fields to merge into an existing transaction.
// Nil fields are left unchanged.
type TransactionUpdate struct {
	PeriodID     *int
	Date         *string
	Type         *TransactionType
	Category     *string
	Subcategory  *string
	Amount       *decimal.Decimal
	Description  *string
	VarianceFlag *bool
}

func (u TransactionUpdate) Apply(t Transaction) Transaction {
	setIf(&t.PeriodID, u.PeriodID)
	setIf(&t.Date, u.Date)
	setIf(&t.Type, u.Type)
	setIf(&t.Category, u.Category)
	setIf(&t.Subcategory, u.Subcategory)
	setIf(&t.Amount, u.Amount)
	setIf(&t.Description, u.Description)
	setIf(&t.VarianceFlag, u.VarianceFlag)
	return t
}
