package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

// Goal is a savings target, independent of periods.
type Goal struct {
	ID            int             `json:"id" csv:"id"`
	Name          string          `json:"name" csv:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount" csv:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" csv:"current_amount"`
	TargetDate    string          `json:"target_date" csv:"target_date"`
	Priority      GoalPriority    `json:"priority" csv:"priority"`
	Status        GoalStatus      `json:"status" csv:"status"`
}

func (g Goal) Validate() error {
	switch g.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("%w: goal priority %q", ErrInvalidEnum, g.Priority)
	}
	switch g.Status {
	case GoalActive, GoalCompleted, GoalPaused:
	default:
		return fmt.Errorf("%w: goal status %q", ErrInvalidEnum, g.Status)
	}
	return nil
}

type GoalUpdate struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *string
	Priority      *GoalPriority
	Status        *GoalStatus
}

func (u GoalUpdate) Apply(g Goal) Goal {
	setIf(&g.Name, u.Name)
	setIf(&g.TargetAmount, u.TargetAmount)
	setIf(&g.CurrentAmount, u.CurrentAmount)
	setIf(&g.TargetDate, u.TargetDate)
	setIf(&g.Priority, u.Priority)
	setIf(&g.Status, u.Status)
	return g
}
