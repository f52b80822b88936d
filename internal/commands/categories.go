package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sebuszqo/FinTrack/internal/client"
	"github.com/sebuszqo/FinTrack/internal/finance/domain"
)

func newCategoriesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage budget categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			categories, err := c.Categories(cmd.Context())
			if err != nil {
				return err
			}
			for _, cat := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s %s\n", cat.Nickname, cat.CategoryType, cat.Budget, cat.BudgetFreq)
			}
			return nil
		},
	}

	var categoryType, budget, frequency string
	create := &cobra.Command{
		Use:   "create <nickname>",
		Short: "Create a category with a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(budget)
			if err != nil {
				return fmt.Errorf("budget must be a number: %w", err)
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			message, err := c.CreateCategory(cmd.Context(), client.CategoryInput{
				Nickname:     args[0],
				CategoryType: categoryType,
				Budget:       amount,
				BudgetFreq:   domain.BudgetFrequency(frequency),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
	create.Flags().StringVar(&categoryType, "type", "", "category type (required)")
	create.Flags().StringVar(&budget, "budget", "0", "budget amount")
	create.Flags().StringVar(&frequency, "freq", string(domain.FrequencyMonthly), "budget frequency: daily, weekly, monthly or yearly")
	_ = create.MarkFlagRequired("type")

	update := &cobra.Command{
		Use:   "update <nickname> <field> <value>",
		Short: "Change one field: nickname, category_type, budget or budget_freq",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			category, err := c.UpdateCategory(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", category.Nickname)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <nickname>",
		Short: "Delete a category and its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			message, err := c.DeleteCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}
