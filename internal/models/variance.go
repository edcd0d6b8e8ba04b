package models

import "github.com/shopspring/decimal"

// Variance explains a budget vs actual gap for a category within a period.
type Variance struct {
	ID             int             `json:"id" csv:"id"`
	PeriodID       int             `json:"period_id" csv:"period_id"`
	Category       string          `json:"category" csv:"category"`
	BudgetedAmount decimal.Decimal `json:"budgeted_amount" csv:"budgeted_amount"`
	ActualAmount   decimal.Decimal `json:"actual_amount" csv:"actual_amount"`
	VarianceAmount decimal.Decimal `json:"variance_amount" csv:"variance_amount"`
	Reason         string          `json:"reason" csv:"reason"`
	Explanation    string          `json:"explanation" csv:"explanation"`
}

type VarianceUpdate struct {
	PeriodID       *int
	Category       *string
	BudgetedAmount *decimal.Decimal
	ActualAmount   *decimal.Decimal
	VarianceAmount *decimal.Decimal
	Reason         *string
	Explanation    *string
}

func (u VarianceUpdate) Apply(v Variance) Variance {
	setIf(&v.PeriodID, u.PeriodID)
	setIf(&v.Category, u.Category)
	setIf(&v.BudgetedAmount, u.BudgetedAmount)
	setIf(&v.ActualAmount, u.ActualAmount)
	setIf(&v.VarianceAmount, u.VarianceAmount)
	setIf(&v.Reason, u.Reason)
	setIf(&v.Explanation, u.Explanation)
	return v
}
