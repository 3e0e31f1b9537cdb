package main

import (
	"context"
	"fmt"
	"os"

	"github.com/budgetflow/budget-cli/internal/budget"
	"github.com/budgetflow/budget-cli/internal/cli"
	"github.com/budgetflow/budget-cli/internal/model"
	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the annual budget with the monthly totals",
		Long: `Copy per-category totals from the monthly budget into the month's column of
the annual budget, matching categories by label.`,
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
			title := s.Title()

			if err := syncSheet(ctx, env, "Expenses", expenses, title, numExpense); err != nil {
				return err
			}
			if err := syncSheet(ctx, env, "Income", income, title, numIncome); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("\nAnnual budget successfully synchronized."))
			return nil
		},
	}
}

func syncSheet(ctx context.Context, env *cmdEnv, sheetName string, source *model.CategoryMap, title string, numCategories int) error {
	fmt.Printf("\nSynchronizing annual budget with %s %s:\n\n", title, sheetName)

	synced, err := budget.Sync(ctx, env.gw, env.cfg.AnnualID, sheetName, source, title, numCategories, budget.MaxRows)
	if err != nil {
		return annualHint(err)
	}

	budget.RenderSynced(os.Stdout, synced)
	return nil
}
