package main

import (
	"os"

	"github.com/budgetflow/budget-cli/internal/budget"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the monthly budget summary",
		Long:  `Print the month title and the expense and income totals of the monthly budget.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			env, err := newEnv(ctx)
			if err != nil {
				return err
			}

			s, err := budget.ReadSummary(ctx, env.gw, env.cfg.MonthlyID)
			if err != nil {
				return monthlyHint(err)
			}

			budget.RenderSummary(os.Stdout, s.Title(), s.ExpenseTotal(), s.IncomeTotal())
			return nil
		},
	}
}
