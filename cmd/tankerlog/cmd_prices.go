package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

func pricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices <station-id>...",
		Short: "Print current prices for up to 10 stations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			api, err := newAPI(logger)
			if err != nil {
				return err
			}

			result, err := api.Prices().AddIDs(args...).Execute(context.Background())
			if err != nil {
				return err
			}
			if !result.OK {
				return fmt.Errorf("prices request failed: %s", result.Message)
			}

			ids := make([]string, 0, len(result.Prices))
			for id := range result.Prices {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				prices := result.Prices[id]
				fmt.Printf("%s (%s)\n", id, prices.Status)
				for _, gasType := range []tankerkoenig.GasType{tankerkoenig.GasTypeDiesel, tankerkoenig.GasTypeE5, tankerkoenig.GasTypeE10} {
					if price, ok := prices.Price(gasType); ok {
						fmt.Printf("  %-6s %.3f €/L\n", gasType, price)
					}
				}
			}

			return nil
		},
	}

	return cmd
}
