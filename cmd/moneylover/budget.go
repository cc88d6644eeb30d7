package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/format"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category monthly budgets",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(removeBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <categoryId> <limit>",
		Short: "Set (or replace) the monthly limit for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseLimitArg(args[1])
			if err != nil {
				return err
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if !categoryExists(s, args[0]) {
				return fmt.Errorf("unknown category %q", args[0])
			}

			s.SetBudget(model.NewBudget(args[0], limit))
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s",
				args[0], format.Currency(limit))))
			return nil
		},
	}
}

func removeBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <categoryId>",
		Short: "Remove the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.RemoveBudget(model.BudgetID(args[0]))
			fmt.Println(cli.FormatSuccess("Removed budget for " + args[0]))
			return nil
		},
	}
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with this month's spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			budgets := s.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets set. Use 'moneylover budget set' to create one."))
				return nil
			}

			// Spending per category for the current month.
			month := store.ByMonth(s.Transactions(), time.Now())
			spent := make(map[string]float64)
			for _, g := range store.GroupExpenseByCategory(month, s.Categories()) {
				spent[g.Category.ID] = g.Total
			}
			names := categoryNames(s)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "CATEGORY\tLIMIT\tSPENT\tREMAINING")
			for _, b := range budgets {
				name := names[b.CategoryID]
				if name == "" {
					name = b.CategoryID
				}
				used := spent[b.CategoryID]
				remaining := format.Currency(b.Limit - used)
				if used > b.Limit {
					remaining = cli.ExpenseStyle.Render(remaining)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					name, format.Currency(b.Limit), format.Currency(used), remaining)
			}
			return nil
		},
	}
}
