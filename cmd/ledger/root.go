package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Miguelburitica/accounts-project/internal/config"
	"github.com/Miguelburitica/accounts-project/internal/events/kafka"
	memevents "github.com/Miguelburitica/accounts-project/internal/events/memory"
	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/Miguelburitica/accounts-project/internal/ledger"
	"github.com/Miguelburitica/accounts-project/internal/logger"
	"github.com/Miguelburitica/accounts-project/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

const dateLayout = "2006-01-02"

// app carries what every command needs. The ledger is opened lazily by the
// root command's pre-run hook.
type app struct {
	cfg     *config.Config
	ledger  *ledger.Ledger
	now     func() time.Time
	closers []func() error
}

func newApp(cfg *config.Config) *app {
	return &app{cfg: cfg, now: time.Now}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ledger",
		Short: "Household ledger with CSV import and export",
		Long: `Keeps budgeting periods, accounts, receivables, templates, transactions,
variances and savings goals in a single state blob, and exchanges them as one
CSV file per collection.

Storage, events and output are configured through LEDGER_* environment
variables or a ledger.yaml file in the working directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}

	root.AddCommand(
		a.importCmd(),
		a.exportCmd(),
		a.periodCmd(),
		a.txCmd(),
		a.budgetCmd(),
		a.summaryCmd(),
	)
	return root
}

func (a *app) open(ctx context.Context) error {
	if a.ledger != nil {
		return nil
	}
	log := logger.WithComponent("cli")

	store, closeStore, err := storage.Open(ctx, a.cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", a.cfg.Store.Driver, err)
	}
	a.closers = append(a.closers, closeStore)

	var publisher interfaces.EventPublisher = memevents.NewRecorder()
	if len(a.cfg.Kafka.Brokers) > 0 {
		p := kafka.NewPublisher(a.cfg.Kafka.Brokers)
		a.closers = append(a.closers, p.Close)
		publisher = p
	}

	a.ledger = ledger.NewLedger(store,
		ledger.WithPublisher(publisher, a.cfg.Kafka.Topic),
		ledger.WithStateKey(a.cfg.Store.Key),
		ledger.WithLogger(logger.WithComponent("ledger")),
		ledger.WithClock(a.now),
	)
	loaded := a.ledger.Load(ctx)

	log.Debug().
		Str("driver", a.cfg.Store.Driver).
		Bool("loaded", loaded).
		Int("brokers", len(a.cfg.Kafka.Brokers)).
		Msg("Ledger opened")
	return nil
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return d, nil
}

func parseDate(flag, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("invalid --%s %q, use YYYY-MM-DD", flag, value)
	}
	return nil
}
