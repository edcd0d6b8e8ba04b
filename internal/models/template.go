package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Irregular Frequency = "irregular"
)

// BudgetTemplate is a recurring planned expense. Only active items count
// towards budget totals.
type BudgetTemplate struct {
	ID          int             `json:"id" csv:"id"`
	Category    string          `json:"category" csv:"category"`
	Subcategory string          `json:"subcategory,omitempty" csv:"subcategory"`
	Amount      decimal.Decimal `json:"amount" csv:"amount"`
	DueDate     *int            `json:"due_date,omitempty" csv:"due_date"` // day of month
	Frequency   Frequency       `json:"frequency" csv:"frequency"`
	IsActive    bool            `json:"is_active" csv:"is_active"`
}

func (b BudgetTemplate) Validate() error {
	if b.Frequency != Biweekly && b.Frequency != Monthly {
		return fmt.Errorf("%w: budget frequency %q", ErrInvalidEnum, b.Frequency)
	}
	return nil
}

type BudgetTemplateUpdate struct {
	Category    *string
	Subcategory *string
	Amount      *decimal.Decimal
	DueDate     *int
	Frequency   *Frequency
	IsActive    *bool
}

func (u BudgetTemplateUpdate) Apply(b BudgetTemplate) BudgetTemplate {
	setIf(&b.Category, u.Category)
	setIf(&b.Subcategory, u.Subcategory)
	setIf(&b.Amount, u.Amount)
	if u.DueDate != nil {
		day := *u.DueDate
		b.DueDate = &day
	}
	setIf(&b.Frequency, u.Frequency)
	setIf(&b.IsActive, u.IsActive)
	return b
}

// IncomeTemplate is a recurring expected income.
type IncomeTemplate struct {
	ID        int             `json:"id" csv:"id"`
	Source    string          `json:"source" csv:"source"`
	Amount    decimal.Decimal `json:"amount" csv:"amount"`
	Frequency Frequency       `json:"frequency" csv:"frequency"`
	IsActive  bool            `json:"is_active" csv:"is_active"`
}

func (i IncomeTemplate) Validate() error {
	switch i.Frequency {
	case Biweekly, Monthly, Irregular:
		return nil
	}
	return fmt.Errorf("%w: income frequency %q", ErrInvalidEnum, i.Frequency)
}

type IncomeTemplateUpdate struct {
	Source    *string
	Amount    *decimal.Decimal
	Frequency *Frequency
	IsActive  *bool
}

func (u IncomeTemplateUpdate) Apply(i IncomeTemplate) IncomeTemplate {
	setIf(&i.Source, u.Source)
	setIf(&i.Amount, u.Amount)
	setIf(&i.Frequency, u.Frequency)
	setIf(&i.IsActive, u.IsActive)
	return i
}
