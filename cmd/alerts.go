package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmaina/sokoboard/pkg/alerts"
	"github.com/kmaina/sokoboard/pkg/market"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Manage price alerts",
}

// alertsAddCmd creates a price alert against the current generated
// price. Alerts live in process memory; the serve command keeps one
// book alive for a whole session.
var alertsAddCmd = &cobra.Command{
	Use:   "add <crop> <target-price>",
	Short: "Set a price alert for a crop",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		crop, target := args[0], args[1]

		offline, _ := cmd.Flags().GetBool("offline")
		b := newBoard(market.MarketProfile, !offline)
		b.Refresh(cmd.Context())

		current := 0.0
		for _, r := range b.Snapshot().Prices {
			if r.Crop == crop {
				current = r.Price
				break
			}
		}

		book := alerts.NewBook()
		alert, err := book.Add(crop, target, current, time.Now())
		if err != nil {
			return fmt.Errorf("cannot set alert for %s: %w", crop, err)
		}

		fmt.Printf("Price alert set for %s at KSH %.0f/kg (current price: KSH %.0f)\n",
			alert.Crop, alert.TargetPrice, alert.PriceAtCreation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsAddCmd)
}
