package main

import (
	"os"

	"github.com/budgetflow/budget-cli/internal/budget"
	"github.com/spf13/cobra"
)

func logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Print the transaction history of the monthly budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			env, err := newEnv(ctx)
			if err != nil {
				return err
			}

			expenses, income, err := budget.ExtractEntries(ctx, env.gw, env.cfg.MonthlyID)
			if err != nil {
				return monthlyHint(err)
			}

			budget.RenderEntries(os.Stdout, expenses, "EXPENSES")
			budget.RenderEntries(os.Stdout, income, "INCOME")
			return nil
		},
	}
}
