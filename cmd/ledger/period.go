package main

import (
	"fmt"
	"strconv"

	"github.com/Miguelburitica/accounts-project/internal/ledger"
	"github.com/spf13/cobra"
)

const defaultPeriodDays = 14

func (a *app) periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Manage budgeting periods",
	}
	cmd.AddCommand(a.periodCreateCmd(), a.periodCloseCmd(), a.periodNotesCmd(), a.periodRefreshCmd())
	return cmd
}

func (a *app) periodCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a new period, closing the active one",
		Example: `  ledger period create --start 2024-01-01 --assets 1500000 --template
  ledger period create --start 2024-01-16 --end 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			assets, _ := cmd.Flags().GetString("assets")
			template, _ := cmd.Flags().GetBool("template")

			if err := parseDate("start", start); err != nil {
				return err
			}
			if end == "" {
				var err error
				if end, err = ledger.PeriodEndDate(start, defaultPeriodDays); err != nil {
					return err
				}
			} else if err := parseDate("end", end); err != nil {
				return err
			}
			liquid, err := parseAmount("assets", assets)
			if err != nil {
				return err
			}

			p := a.ledger.CreatePeriod(cmd.Context(), ledger.NewPeriod{
				StartDate:         start,
				EndDate:           end,
				LiquidAssetsStart: liquid,
				ApplyTemplate:     template,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Period %d active from %s to %s, budget %s\n",
				p.ID, p.StartDate, p.EndDate, a.money(p.TotalBudget))
			return nil
		},
	}
	cmd.Flags().String("start", "", "First day, YYYY-MM-DD")
	cmd.Flags().String("end", "", "Last day, YYYY-MM-DD (default start + 14 days)")
	cmd.Flags().String("assets", "0", "Liquid assets at the start")
	cmd.Flags().Bool("template", false, "Seed the budget from the active budget template")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func (a *app) periodCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Complete the active period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, _ := cmd.Flags().GetString("assets")
			notes, _ := cmd.Flags().GetString("notes")

			liquid, err := parseAmount("assets", assets)
			if err != nil {
				return err
			}

			p, ok := a.ledger.ClosePeriod(cmd.Context(), ledger.ClosePeriod{LiquidAssetsEnd: liquid, Notes: notes})
			if !ok {
				return fmt.Errorf("no active period")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Period %d closed, variance %s (accuracy %d%%)\n",
				p.ID, a.money(p.Variance), ledger.AccuracyScore(p.Variance, p.TotalBudget))
			return nil
		},
	}
	cmd.Flags().String("assets", "", "Liquid assets at the end")
	cmd.Flags().String("notes", "", "Closing notes")
	_ = cmd.MarkFlagRequired("assets")
	return cmd
}

func (a *app) periodNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <period-id> <text>",
		Short: "Replace the notes of a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid period id %q", args[0])
			}
			if !a.ledger.UpdatePeriodNotes(cmd.Context(), id, args[1]) {
				return fmt.Errorf("period %d not found", id)
			}
			return nil
		},
	}
}

func (a *app) periodRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Recompute the active period's actual spending",
		Long:  "Useful after importing transactions, which does not touch the cached period totals.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.ledger.RefreshPeriodActuals(cmd.Context())
			p, ok := a.ledger.CurrentPeriod()
			if !ok {
				return fmt.Errorf("no active period")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Period %d actual %s, variance %s\n",
				p.ID, a.money(p.TotalActual), a.money(p.Variance))
			return nil
		},
	}
}
