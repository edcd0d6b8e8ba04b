package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	PeriodCreated       Type = "period.created"
	PeriodClosed        Type = "period.closed"
	TransactionRecorded Type = "transaction.recorded"
	ImportCompleted     Type = "import.completed"
)

// LedgerEvent is the envelope published after a state change has been persisted.
type LedgerEvent struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func New(t Type, payload any, at time.Time) LedgerEvent {
	return LedgerEvent{
		ID:         uuid.New().String(),
		Type:       t,
		OccurredAt: at,
		Payload:    payload,
	}
}

type PeriodChanged struct {
	PeriodID    int             `json:"period_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	TotalActual decimal.Decimal `json:"total_actual"`
	Variance    decimal.Decimal `json:"variance"`
}

type TransactionChanged struct {
	TransactionID int             `json:"transaction_id"`
	PeriodID      int             `json:"period_id"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
}

type ImportSummary struct {
	Collections map[string]int `json:"collections"` // rows imported per collection
}
