package ledger

import (
	"context"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/Miguelburitica/accounts-project/internal/models/events"
	"github.com/shopspring/decimal"
)

type NewPeriod struct {
	StartDate         string
	EndDate           string
	LiquidAssetsStart decimal.Decimal
	// ApplyTemplate seeds TotalBudget with the active budget template total.
	ApplyTemplate bool
}

type ClosePeriod struct {
	LiquidAssetsEnd decimal.Decimal
	Notes           string // kept unchanged when empty
}

// CreatePeriod starts a new active period. A period that is still active is
// closed first; if it never recorded its ending assets they are taken from
// its starting assets.
func (l *Ledger) CreatePeriod(ctx context.Context, req NewPeriod) models.Period {
	l.mu.Lock()
	defer l.mu.Unlock()

	var closed *models.Period
	for i := range l.state.Periods {
		p := &l.state.Periods[i]
		if !p.IsActive() {
			continue
		}
		p.Status = models.PeriodCompleted
		if p.LiquidAssetsEnd.IsZero() {
			p.LiquidAssetsEnd = p.LiquidAssetsStart
		}
		prev := *p
		closed = &prev
		break
	}

	budget := decimal.Zero
	if req.ApplyTemplate {
		budget = ActiveBudgetTotal(l.state.BudgetTemplate)
	}

	period := models.Period{
		ID:                nextID(l.state.Periods, periodID),
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Status:            models.PeriodActive,
		LiquidAssetsStart: req.LiquidAssetsStart,
		LiquidAssetsEnd:   decimal.Zero,
		TotalReceivables:  OutstandingReceivables(l.state.Receivables),
		TotalBudget:       budget,
		TotalActual:       decimal.Zero,
		Variance:          budget,
	}
	l.state.Periods = append(l.state.Periods, period)
	l.currentID = &period.ID

	l.save(ctx)

	if closed != nil {
		l.publish(ctx, events.PeriodClosed, periodChanged(*closed))
	}
	l.publish(ctx, events.PeriodCreated, periodChanged(period))

	l.log.Info().
		Int("period_id", period.ID).
		Str("start_date", period.StartDate).
		Str("end_date", period.EndDate).
		Msg("Period created")
	return period
}

// ClosePeriod completes the active period. It reports false when no period
// is active.
func (l *Ledger) ClosePeriod(ctx context.Context, req ClosePeriod) (models.Period, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.currentPeriod()
	if p == nil {
		return models.Period{}, false
	}

	p.Status = models.PeriodCompleted
	p.LiquidAssetsEnd = req.LiquidAssetsEnd
	if req.Notes != "" {
		p.Notes = req.Notes
	}
	p.Variance = p.TotalBudget.Sub(p.TotalActual)

	closed := *p
	l.currentID = nil

	l.save(ctx)
	l.publish(ctx, events.PeriodClosed, periodChanged(closed))

	l.log.Info().Int("period_id", closed.ID).Str("variance", closed.Variance.String()).Msg("Period closed")
	return closed, true
}

// UpdatePeriodNotes replaces the notes of any period.
func (l *Ledger) UpdatePeriodNotes(ctx context.Context, id int, notes string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.Periods, periodID, id)
	if i < 0 {
		return false
	}
	l.state.Periods[i].Notes = notes
	l.save(ctx)
	return true
}

func periodChanged(p models.Period) events.PeriodChanged {
	return events.PeriodChanged{
		PeriodID:    p.ID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		TotalBudget: p.TotalBudget,
		TotalActual: p.TotalActual,
		Variance:    p.Variance,
	}
}
