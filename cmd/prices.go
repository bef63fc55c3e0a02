package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kmaina/sokoboard/pkg/market"
)

// pricesCmd prints the full market price board, optionally filtered.
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Print live market prices from Kenyan markets",
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		asJSON, _ := cmd.Flags().GetBool("json")

		b := newBoard(market.MarketProfile, !offline)
		b.Refresh(cmd.Context())

		filtered := b.Filtered(market.Filter{Category: category, Search: search})

		if asJSON {
			return json.NewEncoder(os.Stdout).Encode(filtered)
		}

		if len(filtered) == 0 {
			fmt.Println("No crops found matching your search criteria.")
			return nil
		}

		snap := b.Snapshot()
		if snap.Online {
			fmt.Printf("1 USD = %.2f KSH\n\n", snap.Rate)
		}
		printPriceTable(filtered)
		return nil
	},
}

func printPriceTable(records []market.PriceRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "CROP\tMARKET\tCATEGORY\tQUALITY\tKSH/KG\tCHANGE\tVOLUME (KG)\t")
	for _, r := range records {
		trend := "▼"
		if r.TrendUp() {
			trend = "▲"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%s %+.1f%%\t%d\t\n",
			r.Crop, r.Location, r.Category, r.Quality, r.Price, trend, r.ChangePct, r.VolumeKg)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(pricesCmd)
	pricesCmd.Flags().StringP("category", "c", "all", "Filter by category: grains, vegetables, fruits")
	pricesCmd.Flags().StringP("search", "s", "", "Search crops or markets")
	pricesCmd.Flags().Bool("json", false, "Output as JSON")
}
