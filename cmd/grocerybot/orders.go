package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freshmart/grocery-bot/internal/cli"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders captured in the local fallback log",
		RunE:  runOrders,
	}

	cmd.Flags().Int("limit", 20, "maximum number of orders to show")

	return cmd
}

func runOrders(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	orderLog, err := newOrderLog()
	if err != nil {
		return fmt.Errorf("failed to open order log: %w", err)
	}
	defer func() { _ = orderLog.Close() }()

	orders, err := orderLog.ListOrders(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No orders in the local log."))
		return nil
	}

	fmt.Println(cli.FormatTitle("Local order log"))
	for _, o := range orders {
		fmt.Printf("%s  %s  ₹%s  %s\n",
			o.OrderID,
			o.CreatedAt.Local().Format("2006-01-02 15:04"),
			o.TotalAmount.String(),
			o.Status)
		fmt.Println(cli.SubtleStyle.Render(
			fmt.Sprintf("   %s (%s)", o.CustomerName, o.CustomerPhone)))
		fmt.Println(cli.SubtleStyle.Render("   " + o.ItemsSummary))
	}

	return nil
}
