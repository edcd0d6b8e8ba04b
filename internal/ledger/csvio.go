package ledger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Miguelburitica/accounts-project/internal/csvcodec"
	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/Miguelburitica/accounts-project/internal/models/events"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// Collections lists the CSV payload names in import order.
var Collections = []string{
	"periods",
	"accounts",
	"receivables",
	"budget_template",
	"income_template",
	"receivable_payments",
	"transactions",
	"variances",
	"goals",
}

// Import replaces each collection that has a non-empty payload in files.
// Payloads are applied in Collections order; the first one that fails to
// decode stops the import and the collections replaced before it stay
// replaced and unsaved. Either way the first active period becomes the
// current one; only a complete import saves the state.
func (l *Ledger) Import(ctx context.Context, files map[string]string) error {
	const op = "Import"

	l.mu.Lock()
	defer l.mu.Unlock()

	for name := range files {
		if !slices.Contains(Collections, name) {
			l.log.Warn().Str("collection", name).Msg("Ignoring unrecognized CSV payload")
		}
	}

	imported := make(map[string]int)
	for _, name := range Collections {
		text := files[name]
		if text == "" {
			continue
		}

		n, err := l.replaceCollection(name, text)
		if err != nil {
			l.resolveCurrent()
			return fmt.Errorf("%s: %s: %w", op, name, err)
		}
		imported[name] = n
		l.log.Info().Str("collection", name).Int("rows", n).Msg("Collection imported")
	}

	l.resolveCurrent()
	l.save(ctx)
	l.publish(ctx, events.ImportCompleted, events.ImportSummary{Collections: imported})
	return nil
}

// resolveCurrent makes the first active period the current one. Imported
// ids may belong to different records than before.
func (l *Ledger) resolveCurrent() {
	l.currentID = nil
	if p, ok := lo.Find(l.state.Periods, models.Period.IsActive); ok {
		l.currentID = &p.ID
	}
}

func (l *Ledger) replaceCollection(name, text string) (int, error) {
	switch name {
	case "periods":
		return replace(&l.state.Periods, text)
	case "accounts":
		return replace(&l.state.Accounts, text)
	case "receivables":
		return replace(&l.state.Receivables, text)
	case "budget_template":
		return replace(&l.state.BudgetTemplate, text)
	case "income_template":
		return replace(&l.state.IncomeTemplate, text)
	case "receivable_payments":
		return replace(&l.state.ReceivablePayments, text)
	case "transactions":
		return replace(&l.state.Transactions, text)
	case "variances":
		return replace(&l.state.Variances, text)
	case "goals":
		return replace(&l.state.Goals, text)
	}
	return 0, fmt.Errorf("unknown collection %q", name)
}

func replace[T any](dst *[]T, text string) (int, error) {
	items, err := csvcodec.UnmarshalAll[T](csvcodec.Parse(text))
	if err != nil {
		return 0, err
	}
	*dst = items
	return len(items), nil
}

// CollectionCSV renders one collection as CSV text.
func (l *Ledger) CollectionCSV(name string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.collectionCSV(name)
}

func (l *Ledger) collectionCSV(name string) (string, error) {
	switch name {
	case "periods":
		return encode(l.state.Periods)
	case "accounts":
		return encode(l.state.Accounts)
	case "receivables":
		return encode(l.state.Receivables)
	case "budget_template":
		return encode(l.state.BudgetTemplate)
	case "income_template":
		return encode(l.state.IncomeTemplate)
	case "receivable_payments":
		return encode(l.state.ReceivablePayments)
	case "transactions":
		return encode(l.state.Transactions)
	case "variances":
		return encode(l.state.Variances)
	case "goals":
		return encode(l.state.Goals)
	}
	return "", fmt.Errorf("unknown collection %q", name)
}

func encode[T any](items []T) (string, error) {
	records, err := csvcodec.MarshalAll(items)
	if err != nil {
		return "", err
	}
	return csvcodec.Serialize(records), nil
}

type exportFile struct {
	name    string
	content string
}

// ExportAll emits <collection>_<day>.csv for every collection, empty ones
// included.
func (l *Ledger) ExportAll(ctx context.Context, emitter interfaces.FileEmitter, day time.Time) error {
	return l.export(ctx, emitter, func() ([]exportFile, error) {
		stamp := day.Format(dateLayout)
		files := make([]exportFile, 0, len(Collections))
		for _, name := range Collections {
			content, err := l.collectionCSV(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			files = append(files, exportFile{name: fmt.Sprintf("%s_%s.csv", name, stamp), content: content})
		}
		return files, nil
	})
}

// ExportPeriods emits periods_<day>.csv only.
func (l *Ledger) ExportPeriods(ctx context.Context, emitter interfaces.FileEmitter, day time.Time) error {
	return l.export(ctx, emitter, func() ([]exportFile, error) {
		content, err := encode(l.state.Periods)
		if err != nil {
			return nil, err
		}
		return []exportFile{{name: fmt.Sprintf("periods_%s.csv", day.Format(dateLayout)), content: content}}, nil
	})
}

// ExportPeriod emits the period with the given id and, when it has any, its
// transactions and variances. It reports false for an unknown period.
func (l *Ledger) ExportPeriod(ctx context.Context, emitter interfaces.FileEmitter, id int, day time.Time) (bool, error) {
	found := false
	err := l.export(ctx, emitter, func() ([]exportFile, error) {
		i := indexOf(l.state.Periods, periodID, id)
		if i < 0 {
			return nil, nil
		}
		found = true
		stamp := day.Format(dateLayout)

		content, err := encode(l.state.Periods[i : i+1])
		if err != nil {
			return nil, err
		}
		files := []exportFile{{name: fmt.Sprintf("period_%d_%s.csv", id, stamp), content: content}}

		txs := lo.Filter(l.state.Transactions, func(t models.Transaction, _ int) bool { return t.PeriodID == id })
		if len(txs) > 0 {
			content, err := encode(txs)
			if err != nil {
				return nil, err
			}
			files = append(files, exportFile{name: fmt.Sprintf("period_%d_transactions_%s.csv", id, stamp), content: content})
		}

		variances := lo.Filter(l.state.Variances, func(v models.Variance, _ int) bool { return v.PeriodID == id })
		if len(variances) > 0 {
			content, err := encode(variances)
			if err != nil {
				return nil, err
			}
			files = append(files, exportFile{name: fmt.Sprintf("period_%d_variances_%s.csv", id, stamp), content: content})
		}
		return files, nil
	})
	return found, err
}

// export renders files under the lock and emits them after releasing it.
func (l *Ledger) export(ctx context.Context, emitter interfaces.FileEmitter, render func() ([]exportFile, error)) error {
	const op = "Export"

	l.mu.Lock()
	files, err := render()
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, f := range files {
		if err := emitter.Emit(ctx, f.name, f.content); err != nil {
			return fmt.Errorf("%s: emit %s: %w", op, f.name, err)
		}
		l.log.Debug().Str("file", f.name).Msg("CSV exported")
	}
	return nil
}
