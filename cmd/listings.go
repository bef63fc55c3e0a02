package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmaina/sokoboard/pkg/listings"
)

// listingsCmd groups the listing board operations. Listings live in
// process memory, so mutations are demonstrated within the run; the
// serve command keeps one board alive for a whole session.
var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Manage your produce listings",
}

var listingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all listings with performance metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := listings.NewBoard()
		printListings(b)
		return nil
	},
}

var listingsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a listing between Active and Inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid listing id: %s", args[0])
		}

		b := listings.NewBoard()
		l, err := b.Toggle(id)
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", l.Crop, l.Status)
		printListings(b)
		return nil
	},
}

var listingsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid listing id: %s", args[0])
		}

		b := listings.NewBoard()
		if err := b.Remove(id); err != nil {
			return err
		}
		printListings(b)
		return nil
	},
}

var listingsAddCmd = &cobra.Command{
	Use:   "add <crop> <quantity-kg> <price-per-kg>",
	Short: "Add a new Active listing",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid price: %s", args[2])
		}

		b := listings.NewBoard()
		l := b.Add(args[0], quantity, price, time.Now())
		fmt.Printf("Listed %s at KSH %.0f/kg\n", l.Crop, l.PricePerKg)
		printListings(b)
		return nil
	},
}

func printListings(b *listings.Board) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tCROP\tQUANTITY\tKSH/KG\tSTATUS\tINQUIRIES\tPOSTED\t")
	for _, l := range b.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%s\t%d\t%s\t\n",
			l.ID, l.Crop, l.Quantity, l.PricePerKg, l.Status, l.Inquiries, l.PostedDate)
	}
	w.Flush()

	m := b.Metrics()
	fmt.Printf("\nTotal: %d  Active: %d  Success rate: %d%%\n", m.Total, m.Active, m.SuccessRate)
}

func init() {
	rootCmd.AddCommand(listingsCmd)
	listingsCmd.AddCommand(listingsListCmd)
	listingsCmd.AddCommand(listingsToggleCmd)
	listingsCmd.AddCommand(listingsRemoveCmd)
	listingsCmd.AddCommand(listingsAddCmd)
}
