package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func bestBidAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best-bid-ask [symbol ...]",
		Short: "Print best bid/ask quotes, optionally filtered by symbols (e.g. BTC-USD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			quotes, err := client.GetBestBidAsk(args...)
			if err != nil {
				return err
			}
			return printJSON(quotes)
		},
	}
}

func estimatedPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimated-price <symbol> <side> <quantity>",
		Short: "Print the estimated execution price for a quantity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, side := args[0], args[1]
			switch side {
			case "bid", "ask", "both":
			default:
				return fmt.Errorf("side must be bid, ask or both, got %q", side)
			}
			quantity, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[2], err)
			}

			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			quotes, err := client.GetEstimatedPrice(symbol, side, quantity)
			if err != nil {
				return err
			}
			return printJSON(quotes)
		},
	}
}

func tradingPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trading-pairs [symbol ...]",
		Short: "Print tradable pairs, optionally filtered by symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			pairs, err := client.GetTradingPairs(args...)
			if err != nil {
				return err
			}
			return printJSON(pairs)
		},
	}
}
