package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sebuszqo/FinTrack/internal/buildinfo"
	"github.com/sebuszqo/FinTrack/internal/client"
)

const defaultServer = "http://localhost:8080"

type options struct {
	server string
}

func (o *options) client() *client.Client {
	return client.New(o.server)
}

// authedClient returns a client carrying the token saved by the last login.
func (o *options) authedClient() (*client.Client, error) {
	token, err := loadToken()
	if err != nil {
		return nil, err
	}
	c := o.client()
	c.SetToken(token)
	return c, nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Track accounts, categories and budgets from the terminal",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	server := os.Getenv("FINTRACK_SERVER")
	if server == "" {
		server = defaultServer
	}
	rootCmd.PersistentFlags().StringVar(&opts.server, "server", server, "FinTrack server URL")

	rootCmd.AddCommand(
		newSignupCommand(opts),
		newLoginCommand(opts),
		newAccountsCommand(opts),
		newCategoriesCommand(opts),
		newTransactionsCommand(opts),
		newReportCommand(opts),
	)

	return rootCmd
}
