package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Miguelburitica/accounts-project/internal/ledger"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show net worth and the active period's budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.ledger
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)

			fmt.Fprintf(w, "Liquid assets\t%s\t\n", a.money(l.TotalLiquidAssets()))
			fmt.Fprintf(w, "Receivables\t%s\t\n", a.money(l.TotalReceivables()))
			fmt.Fprintf(w, "Net worth\t%s\t\n", a.money(l.TotalNetWorth()))

			p, ok := l.CurrentPeriod()
			if !ok {
				fmt.Fprintln(w, "No active period\t\t")
				return w.Flush()
			}

			budget := l.CurrentPeriodBudget()
			actual := l.CurrentPeriodActual()
			variance := l.CurrentPeriodVariance()
			days, err := ledger.DaysRemaining(p.EndDate, a.now())
			if err != nil {
				days = 0
			}

			fmt.Fprintf(w, "Period %d\t%s .. %s\t\n", p.ID, p.StartDate, p.EndDate)
			fmt.Fprintf(w, "Budget\t%s\t\n", a.money(budget))
			fmt.Fprintf(w, "Spent\t%s\t\n", a.money(actual))
			fmt.Fprintf(w, "Variance\t%s\t\n", a.money(variance))
			fmt.Fprintf(w, "Used\t%s%%\t\n", ledger.UsagePercentage(actual, budget).StringFixed(1))
			fmt.Fprintf(w, "Days left\t%d\t\n", days)
			return w.Flush()
		},
	}
}

// money renders amount in the configured display currency. Unknown currency
// codes fall back to the plain number.
func (a *app) money(amount decimal.Decimal) string {
	code := a.cfg.Display.Currency
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}
