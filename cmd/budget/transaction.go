package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/budgetflow/budget-cli/internal/budget"
	"github.com/budgetflow/budget-cli/internal/cli"
	"github.com/spf13/cobra"
)

func transactionCmd(kind budget.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <date,amount,description,category>", kind),
		Short: fmt.Sprintf("Record a new %s transaction", kind),
		Long: fmt.Sprintf(`Record a new %s transaction in the monthly budget. Fields are
comma-separated; omit the date to have today filled in automatically.`, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			expenseCats, incomeCats := s.Categories(numExpense, numIncome)
			categories := expenseCats
			if kind == budget.KindIncome {
				categories = incomeCats
			}

			entry, dateFilled, err := budget.ParseTransaction(args[0], categories)
			if err != nil {
				var catErr *budget.CategoryError
				if errors.As(err, &catErr) {
					fmt.Fprintln(os.Stderr, "Valid categories are:")
					for _, label := range catErr.Valid {
						fmt.Fprintln(os.Stderr, label)
					}
				}
				return err
			}
			if dateFilled {
				fmt.Println(cli.InfoStyle.Render("Only 3 fields were specified. Assigning today to date field."))
			}

			// Find the row index past the last existing transaction.
			expenseEntries, incomeEntries, err := budget.ExtractEntries(ctx, env.gw, env.cfg.MonthlyID)
			if err != nil {
				return monthlyHint(err)
			}
			existing := len(expenseEntries)
			if kind == budget.KindIncome {
				existing = len(incomeEntries)
			}

			updated, err := budget.AppendEntry(ctx, env.gw, env.cfg.MonthlyID, kind, entry, existing)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%d cells successfully updated in %s spreadsheet.", updated, s.Title())))
			return nil
		},
	}
}
