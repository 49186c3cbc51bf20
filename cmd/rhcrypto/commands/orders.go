package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rhcrypto/internal/domain"
)

func ordersCmd() *cobra.Command {
	var filter domain.OrderFilter

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			orders, err := client.GetOrders(filter)
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}

	cmd.Flags().StringVar(&filter.Symbol, "symbol", "", "filter by symbol (e.g. BTC-USD)")
	cmd.Flags().StringVar(&filter.Side, "side", "", "filter by side (buy or sell)")
	cmd.Flags().StringVar(&filter.State, "state", "", "filter by state (e.g. open, filled, canceled)")
	cmd.Flags().StringVar(&filter.Type, "type", "", "filter by order type")
	cmd.Flags().StringVar(&filter.CreatedAtStart, "created-at-start", "", "created at or after (RFC 3339)")
	cmd.Flags().StringVar(&filter.CreatedAtEnd, "created-at-end", "", "created at or before (RFC 3339)")
	cmd.Flags().StringVar(&filter.UpdatedAtStart, "updated-at-start", "", "updated at or after (RFC 3339)")
	cmd.Flags().StringVar(&filter.UpdatedAtEnd, "updated-at-end", "", "updated at or before (RFC 3339)")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&filter.Cursor, "cursor", "", "pagination cursor from a previous page")
	return cmd
}

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <order_id>",
		Short: "Print one order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			order, err := client.GetOrder(args[0])
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
}

func placeOrderCmd() *cobra.Command {
	var limitPrice, stopPrice, timeInForce, clientOrderID string

	cmd := &cobra.Command{
		Use:   "place-order <symbol> <side> <type> <quantity>",
		Short: "Submit a new order",
		Long: `Submit a new order.

side is buy or sell; type is market, limit, stop_loss or stop_limit.
limit and stop_limit orders need --limit-price; stop_loss and stop_limit
orders need --stop-price. A client order id is generated unless
--client-order-id is given.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, side, orderType := args[0], args[1], args[2]

			if side != domain.SideBuy && side != domain.SideSell {
				return fmt.Errorf("side must be buy or sell, got %q", side)
			}
			quantity, err := decimal.NewFromString(args[3])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[3], err)
			}

			req := domain.OrderRequest{
				ClientOrderID: clientOrderID,
				Side:          side,
				Type:          orderType,
				Symbol:        symbol,
			}
			if req.ClientOrderID == "" {
				req.ClientOrderID = uuid.NewString()
			}

			parsePrice := func(name, s string) (decimal.Decimal, error) {
				if s == "" {
					return decimal.Decimal{}, fmt.Errorf("%s order requires --%s", orderType, name)
				}
				d, err := decimal.NewFromString(s)
				if err != nil {
					return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", name, s, err)
				}
				return d, nil
			}

			switch orderType {
			case domain.OrderTypeMarket:
				req.MarketOrderConfig = &domain.MarketOrderConfig{AssetQuantity: quantity}
			case domain.OrderTypeLimit:
				lp, err := parsePrice("limit-price", limitPrice)
				if err != nil {
					return err
				}
				req.LimitOrderConfig = &domain.LimitOrderConfig{
					AssetQuantity: quantity,
					LimitPrice:    lp,
					TimeInForce:   timeInForce,
				}
			case domain.OrderTypeStopLoss:
				sp, err := parsePrice("stop-price", stopPrice)
				if err != nil {
					return err
				}
				req.StopLossOrderConfig = &domain.StopLossOrderConfig{
					AssetQuantity: quantity,
					StopPrice:     sp,
					TimeInForce:   timeInForce,
				}
			case domain.OrderTypeStopLimit:
				lp, err := parsePrice("limit-price", limitPrice)
				if err != nil {
					return err
				}
				sp, err := parsePrice("stop-price", stopPrice)
				if err != nil {
					return err
				}
				req.StopLimitOrderConfig = &domain.StopLimitOrderConfig{
					AssetQuantity: quantity,
					LimitPrice:    lp,
					StopPrice:     sp,
					TimeInForce:   timeInForce,
				}
			default:
				return fmt.Errorf("type must be market, limit, stop_loss or stop_limit, got %q", orderType)
			}

			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			order, err := client.PlaceOrder(req)
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}

	cmd.Flags().StringVar(&limitPrice, "limit-price", "", "limit price for limit and stop_limit orders")
	cmd.Flags().StringVar(&stopPrice, "stop-price", "", "stop price for stop_loss and stop_limit orders")
	cmd.Flags().StringVar(&timeInForce, "time-in-force", "gtc", "time in force for non-market orders")
	cmd.Flags().StringVar(&clientOrderID, "client-order-id", "", "idempotency key (default: fresh UUID)")
	return cmd
}

func cancelOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-order <order_id>",
		Short: "Request cancellation of an open order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := appCtx.Client()
			if err != nil {
				return err
			}
			result, err := client.CancelOrder(args[0])
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}
