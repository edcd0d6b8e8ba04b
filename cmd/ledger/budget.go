package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the recurring budget template",
	}
	cmd.AddCommand(a.budgetListCmd(), a.budgetAddCmd(), a.budgetDeleteCmd())
	return cmd
}

func (a *app) budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budget template items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tSUBCATEGORY\tAMOUNT\tDUE\tFREQUENCY\tACTIVE")
			for _, b := range a.ledger.Snapshot().BudgetTemplate {
				due := "-"
				if b.DueDate != nil {
					due = strconv.Itoa(*b.DueDate)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
					b.ID, b.Category, b.Subcategory, a.money(b.Amount), due, b.Frequency, b.IsActive)
			}
			fmt.Fprintf(w, "\t\t\t%s\t\t\tactive total\n", a.money(a.ledger.CurrentPeriodBudget()))
			return w.Flush()
		},
	}
}

func (a *app) budgetAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a budget template item",
		Example: `  ledger budget add --category Hogar --subcategory Arriendo --amount 1200000 --due 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			category, _ := flags.GetString("category")
			subcategory, _ := flags.GetString("subcategory")
			amountText, _ := flags.GetString("amount")
			frequency, _ := flags.GetString("frequency")
			inactive, _ := flags.GetBool("inactive")

			amount, err := parseAmount("amount", amountText)
			if err != nil {
				return err
			}
			item := models.BudgetTemplate{
				Category:    category,
				Subcategory: subcategory,
				Amount:      amount,
				Frequency:   models.Frequency(frequency),
				IsActive:    !inactive,
			}
			if flags.Changed("due") {
				due, _ := flags.GetInt("due")
				if due < 1 || due > 31 {
					return fmt.Errorf("invalid --due %d, use a day of month", due)
				}
				item.DueDate = &due
			}

			item, err = a.ledger.AddBudgetItem(cmd.Context(), item)
			if err != nil {
				return err
			}
			a.ledger.AddExpenseCategory(cmd.Context(), category)
			fmt.Fprintf(cmd.OutOrStdout(), "Budget item %d: %s %s\n", item.ID, item.Category, a.money(item.Amount))
			return nil
		},
	}
	cmd.Flags().String("category", "", "Expense category")
	cmd.Flags().String("subcategory", "", "Subcategory")
	cmd.Flags().String("amount", "", "Planned amount")
	cmd.Flags().Int("due", 0, "Due day of month")
	cmd.Flags().String("frequency", string(models.Monthly), "biweekly or monthly")
	cmd.Flags().Bool("inactive", false, "Keep the item out of budget totals")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (a *app) budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Remove a budget template item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			if !a.ledger.DeleteBudgetItem(cmd.Context(), id) {
				return fmt.Errorf("budget item %d not found", id)
			}
			return nil
		},
	}
}
