package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kmaina/sokoboard/internal/server"
	"github.com/kmaina/sokoboard/pkg/alerts"
	"github.com/kmaina/sokoboard/pkg/board"
	"github.com/kmaina/sokoboard/pkg/listings"
	"github.com/kmaina/sokoboard/pkg/market"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the market board over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		listen, _ := cmd.Flags().GetString("listen")

		b := newBoard(market.MarketProfile, !offline)
		b.Refresh(cmd.Context())

		refresher := board.StartRefresher(b, refreshInterval(market.MarketProfile))
		defer refresher.Stop()

		srv := server.New(
			b,
			listings.NewBoard(),
			alerts.NewBook(),
			viper.GetString("server.username"),
			viper.GetString("server.password"),
		)

		return srv.Start(listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "127.0.0.1:8080", "Address to listen on")
}
