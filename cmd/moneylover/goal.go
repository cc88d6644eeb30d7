package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/format"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
		Long:  `Create savings goals and track manually-added progress toward them.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(editGoalCmd())
	cmd.AddCommand(addFundsCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	var (
		targetStr  string
		monthlyStr string
		deadline   string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := format.ValidateAmount(targetStr)
			if err != nil {
				return err
			}

			goal := model.Goal{
				Title:        args[0],
				TargetAmount: target,
				Deadline:     deadline,
			}
			if monthlyStr != "" {
				monthly, err := format.ValidateAmount(monthlyStr)
				if err != nil {
					return err
				}
				goal.MonthlyTarget = monthly
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			created := s.AddGoal(goal)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created goal %q (%s)", created.Title, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetStr, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&monthlyStr, "monthly", "", "optional monthly saving target")
	cmd.Flags().StringVar(&deadline, "deadline", "", "optional deadline (ISO date)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			goals := s.Goals()
			if len(goals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No goals yet. Use 'moneylover goal add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tTITLE\tSAVED\tTARGET\tPROGRESS\tDEADLINE")
			for _, g := range goals {
				progress := 0.0
				if g.TargetAmount > 0 {
					progress = g.SavedAmount / g.TargetAmount * 100
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%s\n",
					g.ID, g.Title,
					format.Currency(g.SavedAmount),
					format.Currency(g.TargetAmount),
					progress, g.Deadline)
			}
			return nil
		},
	}
}

func editGoalCmd() *cobra.Command {
	var (
		title      string
		targetStr  string
		monthlyStr string
		deadline   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.GoalPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("target") {
				target, err := format.ValidateAmount(targetStr)
				if err != nil {
					return err
				}
				patch.TargetAmount = &target
			}
			if cmd.Flags().Changed("monthly") {
				monthly, err := format.ValidateAmount(monthlyStr)
				if err != nil {
					return err
				}
				patch.MonthlyTarget = &monthly
			}
			if cmd.Flags().Changed("deadline") {
				patch.Deadline = &deadline
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.UpdateGoal(args[0], patch)
			fmt.Println(cli.FormatSuccess("Updated " + args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&targetStr, "target", "", "new target amount")
	cmd.Flags().StringVar(&monthlyStr, "monthly", "", "new monthly target")
	cmd.Flags().StringVar(&deadline, "deadline", "", "new deadline (ISO date)")

	return cmd
}

func addFundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-funds <id> <amount>",
		Short: "Add saved money to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := format.ValidateAmount(args[1])
			if err != nil {
				return err
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.AddGoalFunds(args[0], amount)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s to %s", format.Currency(amount), args[0])))
			return nil
		},
	}
}
