package commands

import (
	"github.com/spf13/cobra"
)

func viewHoldingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view-holdings [asset_code ...]",
		Short: "Print holdings, optionally filtered by asset codes (e.g. BTC ETH)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			holdings, err := client.GetHoldings(args...)
			if err != nil {
				return err
			}
			return printJSON(holdings)
		},
	}
}
