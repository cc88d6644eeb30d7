package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/common"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX bank statements",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your
bank. Imported transactions land in the "Khác" category with the account
id as wallet; recategorize them afterwards with 'moneylover tx update'.

Examples:
  moneylover import-ofx ~/Downloads/statement_jan.qfx
  moneylover import-ofx ~/Downloads/*.ofx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					// If no glob matches, check if it's a direct file
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("no files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}

			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofx.NewParser()
			var pending []model.Transaction
			seen := make(map[string]bool) // FITID dedup across files

			for _, filePath := range allFiles {
				f, err := os.Open(filePath)
				if err != nil {
					slog.Error("failed to open file", "file", filePath, "error", err)
					continue
				}

				transactions, err := parser.ParseFile(f)
				_ = f.Close()
				if err != nil {
					slog.Error("failed to parse OFX file", "file", filePath, "error", err)
					continue
				}

				added := 0
				for _, t := range transactions {
					if t.ID != "" && seen[t.ID] {
						continue
					}
					seen[t.ID] = true
					pending = append(pending, t)
					added++
				}

				common.LogInfo("processed file", common.Fields{
					"file":               filepath.Base(filePath),
					"transactions_found": len(transactions),
					"added":              added,
					"duplicates":         len(transactions) - added,
				})
			}

			if len(pending) == 0 {
				return common.ErrNoTransactions
			}

			if dryRun {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
					"Dry run: %d transactions would be imported", len(pending))))
				return nil
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			bar := progressbar.Default(int64(len(pending)), "importing")
			for _, t := range pending {
				s.AddTransaction(t)
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions", len(pending))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}
