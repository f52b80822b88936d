package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
)

func printTransactions(w io.Writer, transactions []domain.Transaction) {
	for _, t := range transactions {
		notes := ""
		if t.Notes != nil {
			notes = *t.Notes
		}
		fmt.Fprintf(w, "#%d %s %s %s\n", t.ID, t.TransactionDate, t.Amount, notes)
	}
}

func newTransactionsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Record and inspect transactions",
	}

	var category, account, notes string
	add := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction dated now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("amount must be a number: %w", err)
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			input := domain.ClientTransaction{CategoryName: category, AccountName: account, Amount: amount}
			if cmd.Flags().Changed("notes") {
				input.Notes = &notes
			}
			transaction, err := c.AddTransaction(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded transaction #%d\n", transaction.ID)
			return nil
		},
	}
	add.Flags().StringVar(&category, "category", "", "category nickname (required)")
	add.Flags().StringVar(&account, "account", "", "account name (required)")
	add.Flags().StringVar(&notes, "notes", "", "free-text notes")
	_ = add.MarkFlagRequired("category")
	_ = add.MarkFlagRequired("account")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("transaction id must be an integer: %w", err)
			}
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			message, err := c.DeleteTransaction(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	byCategory := &cobra.Command{
		Use:   "by-category <nickname>",
		Short: "List the transactions of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			transactions, err := c.CategoryTransactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printTransactions(cmd.OutOrStdout(), transactions)
			return nil
		},
	}

	byAccount := &cobra.Command{
		Use:   "by-account <name>",
		Short: "List the transactions of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			transactions, err := c.AccountTransactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printTransactions(cmd.OutOrStdout(), transactions)
			return nil
		},
	}

	cmd.AddCommand(add, del, byCategory, byAccount)
	return cmd
}
