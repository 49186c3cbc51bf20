package commands

import (
	"github.com/spf13/cobra"
)

func testConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test-connection",
		Short: "Fetch the trading account to validate credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			acct, err := client.GetAccount()
			if err != nil {
				return err
			}
			return printJSON(acct)
		},
	}
}
