package main

import (
	"fmt"
	"strconv"

	"github.com/Miguelburitica/accounts-project/internal/models"
	"github.com/spf13/cobra"
)

func (a *app) txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and remove transactions",
	}
	cmd.AddCommand(a.txAddCmd(), a.txDeleteCmd())
	return cmd
}

func (a *app) txAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Example: `  ledger tx add --amount 150000 --category Salidas --desc "Lunch with colleagues"
  ledger tx add --type income --amount 2000000 --category Salario --period 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			amountText, _ := flags.GetString("amount")
			txType, _ := flags.GetString("type")
			category, _ := flags.GetString("category")
			subcategory, _ := flags.GetString("subcategory")
			description, _ := flags.GetString("desc")
			date, _ := flags.GetString("date")
			periodID, _ := flags.GetInt("period")
			flagged, _ := flags.GetBool("variance")

			amount, err := parseAmount("amount", amountText)
			if err != nil {
				return err
			}
			if date == "" {
				date = a.now().Format(dateLayout)
			} else if err := parseDate("date", date); err != nil {
				return err
			}
			if !flags.Changed("period") {
				current, ok := a.ledger.CurrentPeriod()
				if !ok {
					return fmt.Errorf("no active period, pass --period")
				}
				periodID = current.ID
			}

			tx, err := a.ledger.AddTransaction(cmd.Context(), models.Transaction{
				PeriodID:     periodID,
				Date:         date,
				Type:         models.TransactionType(txType),
				Category:     category,
				Subcategory:  subcategory,
				Amount:       amount,
				Description:  description,
				VarianceFlag: flagged,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction %d: %s %s in period %d\n",
				tx.ID, tx.Type, a.money(tx.Amount), tx.PeriodID)
			return nil
		},
	}
	cmd.Flags().String("amount", "", "Amount")
	cmd.Flags().String("type", string(models.TransactionExpense), "income or expense")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().String("subcategory", "", "Subcategory")
	cmd.Flags().String("desc", "", "Description")
	cmd.Flags().String("date", "", "Date, YYYY-MM-DD (default today)")
	cmd.Flags().Int("period", 0, "Period id (default the active period)")
	cmd.Flags().Bool("variance", false, "Flag the transaction as a budget variance")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func (a *app) txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Remove a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}
			if !a.ledger.DeleteTransaction(cmd.Context(), id) {
				return fmt.Errorf("transaction %d not found", id)
			}
			return nil
		},
	}
}
