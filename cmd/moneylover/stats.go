package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/format"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

func statsCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly income, expense, and category breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseMonth(month)
			if err != nil {
				return err
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			transactions := s.Transactions()
			categories := s.Categories()
			summary := store.MonthSummary(transactions, categories, ref)

			var b strings.Builder
			fmt.Fprintf(&b, "Thu nhập:  %s\n", cli.IncomeStyle.Render(format.Currency(summary.Income)))
			fmt.Fprintf(&b, "Chi tiêu:  %s\n", cli.ExpenseStyle.Render(format.Currency(summary.Expense)))
			fmt.Fprintf(&b, "Số dư:     %s\n", format.CurrencyWithSign(summary.Balance))
			if summary.TopCategory != "" {
				fmt.Fprintf(&b, "Chi nhiều nhất: %s\n", summary.TopCategory)
			}

			grouped := store.GroupExpenseByCategory(store.ByMonth(transactions, ref), categories)
			if len(grouped) > 0 {
				b.WriteString("\n")
				for _, g := range grouped {
					fmt.Fprintf(&b, "%-16s %s\n", g.Category.Name, format.Currency(g.Total))
				}
			}

			fmt.Println(cli.RenderBox(cli.ChartIcon+" "+ref.Format("01/2006"), strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default: current)")

	return cmd
}
