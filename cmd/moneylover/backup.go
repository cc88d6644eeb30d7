package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/backup"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore the full data set",
		Long: `Export all transactions, categories, budgets, goals, and settings as a
versioned JSON payload, or restore such a payload. Restoring replaces
the current data wholesale.`,
	}

	cmd.AddCommand(backupExportCmd())
	cmd.AddCommand(backupImportCmd())

	return cmd
}

func backupExportCmd() *cobra.Command {
	var (
		out         string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a backup payload",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			svc := backup.NewService(s)

			if toClipboard {
				if err := svc.CopyToClipboard(); err != nil {
					return fmt.Errorf("failed to copy backup to clipboard: %w", err)
				}
				fmt.Println(cli.FormatSuccess("Backup copied to clipboard"))
				return nil
			}

			payload, err := svc.ExportJSON()
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Println(payload)
				return nil
			}
			if err := os.WriteFile(out, []byte(payload), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Println(cli.FormatSuccess("Backup written to " + out))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy the payload to the clipboard instead")

	return cmd
}

func backupImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a backup payload",
		Long: `Validate and restore a backup payload. The current data set is replaced
entirely; transactions referencing categories missing from the backup are
moved to the "Khác" sentinel category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := backup.NewService(s).ImportJSON(string(raw)); err != nil {
				fmt.Println(cli.FormatError(err.Error()))
				return err
			}

			snap := s.Snapshot()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Restored %d transactions, %d categories, %d budgets, %d goals",
				len(snap.Transactions), len(snap.Categories), len(snap.Budgets), len(snap.Goals))))
			return nil
		},
	}
}
