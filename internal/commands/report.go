package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show budget reports",
	}

	overview := &cobra.Command{
		Use:   "overview",
		Short: "Totals per category and per account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			lines, err := c.ReportOverview(cmd.Context())
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	details := &cobra.Command{
		Use:   "details",
		Short: "Spending inside each category's budget window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.authedClient()
			if err != nil {
				return err
			}
			report, err := c.ReportDetails(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, summary := range report {
				status := "within budget"
				if summary.Overbudget {
					status = "OVER BUDGET"
				}
				fmt.Fprintf(out, "%s: %s of %s %s (%s)\n",
					summary.Nickname, summary.Total, summary.Budget, summary.BudgetFreq, status)
				for _, line := range summary.Lines {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(overview, details)
	return cmd
}
