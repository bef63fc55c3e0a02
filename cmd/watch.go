package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmaina/sokoboard/pkg/board"
	"github.com/kmaina/sokoboard/pkg/market"
)

// watchCmd runs the scheduled refresh in the foreground, printing each
// random-walk tick until interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch live market prices update in real time",
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		profileName, _ := cmd.Flags().GetString("profile")
		intervalSecs, _ := cmd.Flags().GetInt("interval")

		profile := market.MarketProfile
		if profileName == market.DashboardProfile.Name {
			profile = market.DashboardProfile
		}

		interval := refreshInterval(profile)
		if intervalSecs > 0 {
			interval = time.Duration(intervalSecs) * time.Second
		}

		b := newBoard(profile, !offline)
		b.Refresh(cmd.Context())

		refresher := board.StartRefresher(b, interval)
		defer refresher.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		fmt.Printf("Watching market prices (every %s, Ctrl+C to stop)\n\n", interval)
		printPriceTable(b.Snapshot().Prices)

		for {
			select {
			case <-sig:
				fmt.Println("\nStopped.")
				return nil
			case <-ticker.C:
				snap := b.Snapshot()
				fmt.Printf("\nUpdated %s\n", snap.LastUpdated.Format("15:04:05"))
				printPriceTable(snap.Prices)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("profile", "market", "Board profile: dashboard or market")
	watchCmd.Flags().IntP("interval", "i", 0, "Seconds between updates (0 = profile default)")
}
