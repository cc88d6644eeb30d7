package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/format"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Record, list, update, and delete income and expense transactions.`,
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txUpdateCmd())
	cmd.AddCommand(txDeleteCmd())

	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		amountStr string
		txType    string
		category  string
		date      string
		note      string
		wallet    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction.

Examples:
  moneylover tx add --amount 50000 --type expense --category cat_food --note "Ăn sáng"
  moneylover tx add --amount 10000000 --type income --category cat_salary --wallet bank`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := format.ValidateAmount(amountStr)
			if err != nil {
				return err
			}

			if txType != string(model.TypeIncome) && txType != string(model.TypeExpense) {
				return fmt.Errorf("invalid type %q, expected income or expense", txType)
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if !categoryExists(s, category) {
				return fmt.Errorf("unknown category %q, see 'moneylover categories list'", category)
			}

			datetime := time.Now().UTC().Format(time.RFC3339)
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				datetime = parsed.UTC().Format(time.RFC3339)
			}

			created := s.AddTransaction(model.Transaction{
				Amount:     amount,
				Type:       model.TransactionType(txType),
				CategoryID: category,
				Datetime:   datetime,
				Note:       note,
				Wallet:     wallet,
			})

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s)",
				created.Type, format.Currency(created.Amount), created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&category, "category", store.CategoryOther, "category id")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	cmd.Flags().StringVar(&wallet, "wallet", "", "wallet name (cash, bank, ...)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		month string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
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
			if limit > 0 {
				transactions = store.Recent(transactions, limit)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found."))
				return nil
			}

			categories := categoryNames(s)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tWALLET\tNOTE")
			for _, t := range transactions {
				name := categories[t.CategoryID]
				if name == "" {
					name = t.CategoryID
				}
				amount := format.Currency(t.Amount)
				if t.Type == model.TypeExpense {
					amount = cli.ExpenseStyle.Render("-" + amount)
				} else {
					amount = cli.IncomeStyle.Render("+" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, displayDate(t), t.Type, amount, name, t.Wallet, t.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "only show a calendar month (YYYY-MM)")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most N transactions")

	return cmd
}

func txUpdateCmd() *cobra.Command {
	var (
		amountStr string
		category  string
		note      string
		wallet    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			var patch model.TransactionPatch
			if cmd.Flags().Changed("amount") {
				amount, err := format.ValidateAmount(amountStr)
				if err != nil {
					return err
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				if !categoryExists(s, category) {
					return fmt.Errorf("unknown category %q", category)
				}
				patch.CategoryID = &category
			}
			if cmd.Flags().Changed("note") {
				patch.Note = &note
			}
			if cmd.Flags().Changed("wallet") {
				patch.Wallet = &wallet
			}

			s.UpdateTransaction(args[0], patch)
			fmt.Println(cli.FormatSuccess("Updated " + args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category id")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().StringVar(&wallet, "wallet", "", "new wallet")

	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.DeleteTransaction(args[0])
			fmt.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}

func categoryExists(s *store.Store, id string) bool {
	for _, c := range s.Categories() {
		if c.ID == id {
			return true
		}
	}
	return false
}

func categoryNames(s *store.Store) map[string]string {
	names := make(map[string]string)
	for _, c := range s.Categories() {
		names[c.ID] = c.Name
	}
	return names
}

func displayDate(t model.Transaction) string {
	when, ok := t.Time()
	if !ok {
		return t.Datetime
	}
	return when.Local().Format("2006-01-02")
}

func parseLimitArg(arg string) (float64, error) {
	limit, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid amount %q", arg)
	}
	return limit, nil
}
