package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/export"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

func exportCmd() *cobra.Command {
	var (
		out   string
		month string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		Long: `Write the transaction list as CSV with the fixed column set
id,datetime,type,amount,categoryId,wallet,note.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			transactions := s.Transactions()
			if month != "" {
				ref, err := parseMonth(month)
				if err != nil {
					return err
				}
				transactions = store.ByMonth(transactions, ref)
			}

			csv := export.ToCSV(transactions)
			if out == "" {
				fmt.Println(csv)
				return nil
			}

			if err := os.WriteFile(out, []byte(csv+"\n"), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(transactions), out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&month, "month", "", "only export a calendar month (YYYY-MM)")

	return cmd
}
