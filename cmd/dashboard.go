package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kmaina/sokoboard/pkg/market"
)

// dashboardCmd prints a one-shot snapshot of the farm dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print a snapshot of the farm dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		timeframe, _ := cmd.Flags().GetString("timeframe")

		b := newBoard(market.DashboardProfile, !offline)
		b.SetTimeframe(market.Timeframe(timeframe))
		b.Refresh(cmd.Context())
		snap := b.Snapshot()

		if snap.Online {
			fmt.Printf("1 USD = %.2f KSH\n", snap.Rate)
		}
		if snap.Weather != nil {
			fmt.Printf("%d°C - %s", snap.Weather.TemperatureC, snap.Weather.Description)
			if snap.Weather.PrecipitationMM > 0 {
				fmt.Printf(" - %.1fmm rain expected", snap.Weather.PrecipitationMM)
			}
			fmt.Println()
		}
		fmt.Printf("Last updated: %s\n\n", snap.LastUpdated.Format("15:04:05"))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "REVENUE (KSH)\tLISTINGS\tBUYERS\tALERTS\t")
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t\n", snap.Stats.RevenueKSH, snap.Stats.ActiveListings, snap.Stats.PotentialBuyers, snap.Stats.AlertCount)
		w.Flush()

		fmt.Println("\nLive Market Prices")
		top := snap.Prices
		if len(top) > 5 {
			top = top[:5]
		}
		printPriceTable(top)

		fmt.Println("\nRecent Notifications")
		for _, n := range snap.Notifications {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s [%s] %s\n", marker, n.Kind, n.Message)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringP("timeframe", "t", "month", "Stats timeframe: week, month, quarter, year")
}
