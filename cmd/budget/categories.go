package main

import (
	"os"

	"github.com/budgetflow/budget-cli/internal/budget"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense and income categories with their totals",
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

			numExpense, numIncome := s.CategoryCounts()
			expenses, income := s.Categories(numExpense, numIncome)

			budget.RenderCategories(os.Stdout, expenses, "EXPENSES")
			budget.RenderCategories(os.Stdout, income, "INCOME")
			return nil
		},
	}
}
