package ledger

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/Miguelburitica/accounts-project/internal/logger"
	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/Miguelburitica/accounts-project/internal/models/events"
	"github.com/rs/zerolog"
)

const (
	// DefaultStateKey is the store key holding the JSON snapshot.
	DefaultStateKey = "financial-data"
	DefaultTopic    = "ledger_events"
)

// Ledger owns the household ledger state. Every mutation runs to completion
// under a single lock, is written to the store and then announced to the
// event publisher. Store and publisher failures are logged, never returned:
// the in-memory state stays authoritative.
type Ledger struct {
	store     interfaces.StateStore
	publisher interfaces.EventPublisher
	topic     string
	key       string
	log       zerolog.Logger
	now       func() time.Time

	mu        sync.Mutex
	state     models.State // CurrentPeriod is only filled in snapshots
	currentID *int         // id of the active period, nil when none
}

type Option func(l *Ledger)

// WithPublisher sets where domain events go. Without it events are dropped.
func WithPublisher(p interfaces.EventPublisher, topic string) Option {
	return func(l *Ledger) {
		l.publisher = p
		if topic != "" {
			l.topic = topic
		}
	}
}

func WithStateKey(key string) Option {
	return func(l *Ledger) {
		l.key = key
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger creates an empty ledger backed by store. Call Load to pick up
// previously saved state.
func NewLedger(store interfaces.StateStore, opts ...Option) *Ledger {
	l := &Ledger{
		store:     store,
		publisher: discard{},
		topic:     DefaultTopic,
		key:       DefaultStateKey,
		log:       logger.WithComponent("ledger"),
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(l)
	}

	l.state = models.State{
		Periods:            []models.Period{},
		Accounts:           []models.Account{},
		Receivables:        []models.Receivable{},
		BudgetTemplate:     []models.BudgetTemplate{},
		IncomeTemplate:     []models.IncomeTemplate{},
		ReceivablePayments: []models.ReceivablePayment{},
		Transactions:       []models.Transaction{},
		Variances:          []models.Variance{},
		Goals:              []models.Goal{},
		LastUpdated:        l.now(),
		ExpenseCategories:  slices.Clone(models.DefaultExpenseCategories),
	}
	return l
}

// Load replaces the in-memory state with the stored snapshot. It reports
// whether a snapshot was applied. A missing key, a store error or a corrupt
// snapshot leave the current state untouched.
func (l *Ledger) Load(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.log.Error().Err(err).Str("key", l.key).Msg("Failed to read ledger state")
		return false
	}
	if !ok {
		l.log.Debug().Str("key", l.key).Msg("No saved ledger state found")
		return false
	}

	var snap models.State
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		l.log.Error().Err(err).Str("key", l.key).Msg("Ignoring corrupt ledger state")
		return false
	}

	l.apply(snap)
	l.log.Info().
		Int("periods", len(l.state.Periods)).
		Int("transactions", len(l.state.Transactions)).
		Msg("Ledger state loaded")
	return true
}

func (l *Ledger) apply(snap models.State) {
	assignIf(&l.state.Periods, snap.Periods)
	assignIf(&l.state.Accounts, snap.Accounts)
	assignIf(&l.state.Receivables, snap.Receivables)
	assignIf(&l.state.BudgetTemplate, snap.BudgetTemplate)
	assignIf(&l.state.IncomeTemplate, snap.IncomeTemplate)
	assignIf(&l.state.ReceivablePayments, snap.ReceivablePayments)
	assignIf(&l.state.Transactions, snap.Transactions)
	assignIf(&l.state.Variances, snap.Variances)
	assignIf(&l.state.Goals, snap.Goals)
	assignIf(&l.state.ExpenseCategories, snap.ExpenseCategories)
	if !snap.LastUpdated.IsZero() {
		l.state.LastUpdated = snap.LastUpdated
	}

	l.currentID = nil
	if snap.CurrentPeriod != nil {
		id := snap.CurrentPeriod.ID
		l.currentID = &id
	}
}

func assignIf[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}

// Save writes the whole state to the store.
func (l *Ledger) Save(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.save(ctx)
}

func (l *Ledger) save(ctx context.Context) {
	snap := l.snapshot()
	snap.LastUpdated = l.now()

	data, err := json.Marshal(snap)
	if err != nil {
		l.log.Error().Err(err).Msg("Failed to encode ledger state")
		return
	}

	if err := l.store.Set(ctx, l.key, string(data)); err != nil {
		l.log.Error().Err(err).Str("key", l.key).Msg("Failed to save ledger state")
		return
	}
	l.state.LastUpdated = snap.LastUpdated
}

// Snapshot returns a copy of the current state.
func (l *Ledger) Snapshot() models.State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshot()
}

func (l *Ledger) snapshot() models.State {
	snap := models.State{
		Periods:            slices.Clone(l.state.Periods),
		Accounts:           slices.Clone(l.state.Accounts),
		Receivables:        slices.Clone(l.state.Receivables),
		BudgetTemplate:     slices.Clone(l.state.BudgetTemplate),
		IncomeTemplate:     slices.Clone(l.state.IncomeTemplate),
		ReceivablePayments: slices.Clone(l.state.ReceivablePayments),
		Transactions:       slices.Clone(l.state.Transactions),
		Variances:          slices.Clone(l.state.Variances),
		Goals:              slices.Clone(l.state.Goals),
		LastUpdated:        l.state.LastUpdated,
		ExpenseCategories:  slices.Clone(l.state.ExpenseCategories),
	}
	if p := l.currentPeriod(); p != nil {
		current := *p
		snap.CurrentPeriod = &current
	}
	return snap
}

// CurrentPeriod returns the active period, if any.
func (l *Ledger) CurrentPeriod() (models.Period, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p := l.currentPeriod(); p != nil {
		return *p, true
	}
	return models.Period{}, false
}

// currentPeriod points into l.state.Periods; do not hold it across appends.
func (l *Ledger) currentPeriod() *models.Period {
	if l.currentID == nil {
		return nil
	}
	i := indexOf(l.state.Periods, periodID, *l.currentID)
	if i < 0 {
		return nil
	}
	return &l.state.Periods[i]
}

func (l *Ledger) publish(ctx context.Context, t events.Type, payload any) {
	event := events.New(t, payload, l.now())
	if err := l.publisher.Publish(ctx, l.topic, event); err != nil {
		l.log.Warn().Err(err).Str("event", string(t)).Msg("Failed to publish ledger event")
	}
}

type discard struct{}

func (discard) Publish(context.Context, string, any) error { return nil }
