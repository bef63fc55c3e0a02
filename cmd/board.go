package cmd

import (
	"context"
	"math/rand"
	"time"

	"github.com/spf13/viper"

	"github.com/kmaina/sokoboard/pkg/board"
	"github.com/kmaina/sokoboard/pkg/forex"
	"github.com/kmaina/sokoboard/pkg/market"
	"github.com/kmaina/sokoboard/pkg/weather"
)

// newBoard wires a board from the config file. The dashboard profile
// gets the short seed table, the market profile the full one.
func newBoard(profile market.Profile, online bool) *board.Board {
	seeds := market.Seeds()
	if profile.Name == market.DashboardProfile.Name {
		seeds = market.DashboardSeeds()
	}

	b := board.New(board.Config{
		Seeds:   seeds,
		Profile: profile,
		RNG:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Rate:    newRateFetcher(),
		Weather: newWeatherFetcher(),
	})
	b.SetDefaultRate(viper.GetFloat64("rate.fallback"))
	b.SetOnline(online)
	return b
}

func newRateFetcher() board.RateFetcher {
	return forex.NewClient(
		viper.GetString("rate.endpoint"),
		viper.GetString("currency.base"),
		viper.GetString("currency.symbol"),
	)
}

// weatherAdapter bridges the weather client's report type onto the
// board's fetcher interface.
type weatherAdapter struct {
	client *weather.Client
}

func (a weatherAdapter) Current(ctx context.Context) (board.Report, bool) {
	report, ok := a.client.Current(ctx)
	if !ok {
		return board.Report{}, false
	}
	return board.Report{
		TemperatureC:    report.TemperatureC,
		Description:     report.Description,
		PrecipitationMM: report.PrecipitationMM,
	}, true
}

func newWeatherFetcher() board.WeatherFetcher {
	return weatherAdapter{client: weather.NewClient(
		viper.GetString("weather.endpoint"),
		viper.GetFloat64("weather.latitude"),
		viper.GetFloat64("weather.longitude"),
	)}
}

func refreshInterval(profile market.Profile) time.Duration {
	key := "refresh.dashboard_seconds"
	if profile.Name == market.MarketProfile.Name {
		key = "refresh.market_seconds"
	}
	if secs := viper.GetInt(key); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return profile.Interval
}
