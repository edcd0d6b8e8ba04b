package ledger_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	memevents "github.com/Miguelburitica/accounts-project/internal/events/memory"
	"github.com/Miguelburitica/accounts-project/internal/ledger"
	"github.com/Miguelburitica/accounts-project/internal/models/events"
	"github.com/Miguelburitica/accounts-project/internal/storage/memory"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	ledger *ledger.Ledger
	store  *memory.MemoryStateStore
	events *memevents.Recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	store := memory.NewMemoryStateStore()
	rec := memevents.NewRecorder()
	l := ledger.NewLedger(store,
		ledger.WithPublisher(rec, "test_events"),
		ledger.WithLogger(zerolog.Nop()),
		ledger.WithClock(func() time.Time { return testNow }),
	)
	return fixture{ledger: l, store: store, events: rec}
}

func (f fixture) eventTypes() []events.Type {
	var types []events.Type
	for _, m := range f.events.Messages() {
		types = append(types, m.Event.(events.LedgerEvent).Type)
	}
	return types
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// captureEmitter keeps emitted files by name.
type captureEmitter struct {
	mu    sync.Mutex
	files map[string]string
}

func newCaptureEmitter() *captureEmitter {
	return &captureEmitter{files: make(map[string]string)}
}

func (c *captureEmitter) Emit(ctx context.Context, filename, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files[filename] = content
	return nil
}

func (c *captureEmitter) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.files))
	for name := range c.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
