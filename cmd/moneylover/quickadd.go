package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/format"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/tui"
)

func quickAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickadd",
		Short: "Record a transaction through an interactive form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			program := tea.NewProgram(tui.NewQuickAdd(s))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("quick-add form failed: %w", err)
			}

			if m, ok := final.(tui.QuickAddModel); ok && m.Saved() != nil {
				saved := m.Saved()
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s",
					saved.Type, format.Currency(saved.Amount))))
			}
			return nil
		},
	}
}
