package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kmaina/sokoboard/pkg/buyers"
)

// buyersCmd prints the buyer directory, optionally filtered.
var buyersCmd = &cobra.Command{
	Use:   "buyers",
	Short: "Find buyers for your produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		product, _ := cmd.Flags().GetString("product")
		location, _ := cmd.Flags().GetString("location")
		minRating, _ := cmd.Flags().GetFloat64("min-rating")

		matched := buyers.Apply(buyers.Directory(), buyers.Filter{
			Product:   product,
			Location:  location,
			MinRating: minRating,
		})

		if len(matched) == 0 {
			fmt.Println("No buyers match your current filters")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "NAME\tLOCATION\tRATING\tORDERS\tDISTANCE\tSEEKING\t")
		for _, b := range matched {
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%.0fkm\t%s\t\n",
				b.Name, b.Location, b.Rating, b.TotalOrders, b.DistanceKm, b.Demand)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(buyersCmd)
	buyersCmd.Flags().StringP("product", "p", "", "Filter by product type (e.g. tomatoes)")
	buyersCmd.Flags().String("location", "", "Search by location")
	buyersCmd.Flags().Float64P("min-rating", "r", 0, "Minimum buyer rating (0-5)")
}
