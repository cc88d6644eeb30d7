package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long: `List, add, edit, and remove categories.

Built-in categories are fixed; only custom categories can be edited or
removed. Removing a category moves its transactions to "Khác" and drops
its budget.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())
	cmd.AddCommand(resetCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tNAME\tTYPE\tCOLOR\tCUSTOM")
			for _, c := range s.Categories() {
				custom := ""
				if c.Custom {
					custom = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Kind, c.Color, custom)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		color string
		icon  string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch model.CategoryKind(kind) {
			case model.KindIncome, model.KindExpense, model.KindBoth:
			default:
				return fmt.Errorf("invalid type %q, expected income, expense, or both", kind)
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			created := s.AddCategory(model.Category{
				Name:  args[0],
				Color: color,
				Icon:  icon,
				Kind:  model.CategoryKind(kind),
			})

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q (%s)", created.Name, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#9AA0A6", "hex color")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&kind, "type", "expense", "income, expense, or both")

	return cmd
}

func editCategoryCmd() *cobra.Command {
	var (
		name  string
		color string
		icon  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a custom category",
		Long:  `Change the name, color, or icon of a custom category. Built-in categories cannot be edited.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			var patch model.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}

			s.UpdateCategory(args[0], patch)
			fmt.Println(cli.FormatSuccess("Updated " + args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&color, "color", "", "new hex color")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon name")

	return cmd
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a custom category",
		Long: `Remove a custom category. Its transactions are remapped to the "Khác"
sentinel category and any budget for it is dropped. Built-in categories
cannot be removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.RemoveCategory(args[0])
			fmt.Println(cli.FormatSuccess("Removed " + args[0]))
			return nil
		},
	}
}

func resetCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in category set",
		Long: `Replace all categories with the built-in defaults. Transactions in
removed categories are remapped to "Khác" and their budgets dropped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.ResetCategoriesToDefault()
			fmt.Println(cli.FormatSuccess("Categories reset to defaults"))
			return nil
		},
	}
}
