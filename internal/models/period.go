package models

import "github.com/shopspring/decimal"

type PeriodStatus string

const (
	PeriodActive    PeriodStatus = "active"
	PeriodCompleted PeriodStatus = "completed"
)

// Period is a budgeting interval. At most one period is active at a time.
type Period struct {
	ID                int             `json:"id" csv:"id"`
	StartDate         string          `json:"start_date" csv:"start_date"`
	EndDate           string          `json:"end_date" csv:"end_date"`
	Status            PeriodStatus    `json:"status" csv:"status"`
	LiquidAssetsStart decimal.Decimal `json:"liquid_assets_start" csv:"liquid_assets_start"`
	LiquidAssetsEnd   decimal.Decimal `json:"liquid_assets_end" csv:"liquid_assets_end"` // zero until the period is closed
	TotalReceivables  decimal.Decimal `json:"total_receivables" csv:"total_receivables"`
	TotalBudget       decimal.Decimal `json:"total_budget" csv:"total_budget"`
	TotalActual       decimal.Decimal `json:"total_actual" csv:"total_actual"`
	Variance          decimal.Decimal `json:"variance" csv:"variance"` // TotalBudget - TotalActual
	Notes             string          `json:"notes" csv:"notes"`
}

func (p Period) IsActive() bool {
	return p.Status == PeriodActive
}
